package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/internal/codec"
)

func newPreviewCmd() *cobra.Command {
	var (
		sf     sessionFlags
		output string
		hide   bool
	)
	cmd := &cobra.Command{
		Use:   "preview image",
		Short: "Render an image with its annotation overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args, &sf, annotate.WithShowAnnotation(!hide))
			if err != nil {
				return err
			}

			format, ok := codec.FormatForName(output)
			if !ok {
				format = annotate.FormatPNG
			}
			var buf bytes.Buffer
			if err := s.View().Encode(&buf, format); err != nil {
				return fmt.Errorf("failed to encode preview: %w", err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write preview: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", output, format)
			return nil
		},
	}

	sf.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "Output file; the format follows its extension")
	cmd.Flags().BoolVar(&hide, "hide-annotation", false, "Render the image without the overlay")
	return cmd
}
