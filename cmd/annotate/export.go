package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/archive"
)

func newExportCmd() *cobra.Command {
	var (
		sf       sessionFlags
		output   string
		matchExt bool
	)
	cmd := &cobra.Command{
		Use:   "export [images...]",
		Short: "Export one label image per input into " + annotate.ArchiveName,
		Long: `Loads the images, replays the stroke script and writes a zip archive
holding one label per image: a black canvas of the image's size with the
painted strokes on top. Labels are named <base>_labeled.<ext>.

Entries that fail are reported and skipped; the archive is still written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := loadSession(ctx, args, &sf,
				annotate.WithExportOptions(annotate.WithMatchExtension(matchExt)))
			if err != nil {
				return err
			}

			rep, exportErr := s.Export(ctx, archive.NewZip())
			if rep == nil || rep.Archive == nil {
				return exportErr
			}

			if err := os.MkdirAll(output, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(output, annotate.ArchiveName)
			if err := os.WriteFile(path, rep.Archive, 0o644); err != nil {
				return fmt.Errorf("failed to write archive: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d labels, %d failed)\n",
				path, len(rep.Entries), len(rep.Failed))
			return exportErr
		},
	}

	sf.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Directory to write the archive into")
	cmd.Flags().BoolVar(&matchExt, "match-ext", false, "Encode each label in its image's format instead of PNG")
	return cmd
}
