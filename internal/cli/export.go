package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/errors"
	"github.com/safarimarks/safarimarks/pkg/render"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [target...]",
		Short: "Render the bookmark tree as a graph",
		Long: `Export the tree rooted at the target (the document root by default) as a
Graphviz graph. DOT goes to stdout unless --output names a file; svg and png
always need --output.`,
		Example: `  safarimarks export > bookmarks.dot
  safarimarks export BookmarksBar --format svg -o bar.svg
  safarimarks export --format png -o bookmarks.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			target, err := doc.Resolve(args...)
			if err != nil {
				return err
			}

			dot := render.ToDOT(target)

			var data []byte
			switch strings.ToLower(format) {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = render.SVG(cmd.Context(), dot)
			case "png":
				data, err = render.PNG(cmd.Context(), dot)
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot, svg, or png)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				if format != "dot" {
					return errors.New(errors.ErrCodeInvalidInput, "--output is required for %s", format)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			loggerFromContext(cmd.Context()).Info("exported graph", "format", format, "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", "dot", "output format: dot, svg, or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")

	return cmd
}
