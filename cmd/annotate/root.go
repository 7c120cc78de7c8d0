package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/script"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:          "annotate",
		Short:        "Paint annotation layers onto images and export them",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			annotate.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newExportCmd(), newPreviewCmd())
	return cmd
}

// sessionFlags are shared by the subcommands that build a session.
type sessionFlags struct {
	script string
	color  string
	width  float64
}

func (f *sessionFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.script, "script", "s", "", "Stroke script to replay (.yaml, .yml or .toml)")
	fs.StringVar(&f.color, "color", "", "Default stroke color as hex (default: first palette color)")
	fs.Float64Var(&f.width, "width", annotate.DefaultBrushWidth, "Brush width in pixels")
}

func (f *sessionFlags) options() ([]annotate.SessionOption, error) {
	opts := []annotate.SessionOption{
		annotate.WithBrush(annotate.DefaultBrush().WithWidth(f.width)),
	}
	if f.color != "" {
		c, err := annotate.ParseHex(f.color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotate.WithColor(c))
	}
	return opts, nil
}

// loadSession reads the images, adds them to a new session and replays the
// script, if any.
func loadSession(ctx context.Context, paths []string, f *sessionFlags, extra ...annotate.SessionOption) (*annotate.Session, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	s := annotate.NewSession(append(opts, extra...)...)

	uploads := make([]annotate.Upload, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
		uploads = append(uploads, annotate.Upload{Name: filepath.Base(p), Data: data})
	}
	if err := s.AddImages(ctx, uploads...); err != nil {
		return nil, err
	}

	if f.script != "" {
		sc, err := script.Load(f.script)
		if err != nil {
			return nil, err
		}
		if err := script.Apply(ctx, s, sc); err != nil {
			return nil, err
		}
	}
	return s, nil
}
