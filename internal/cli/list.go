package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		format string
		simple bool
	)

	cmd := &cobra.Command{
		Use:     "list [target...]",
		Aliases: []string{"ls", "show"},
		Short:   "Show bookmarks and folders",
		Long: `List the children of a folder, or a single bookmark.

Without arguments the whole tree is listed from the root. With arguments the
target is resolved first: a single argument is tried as a UUID and then as a
title, multiple arguments form a path of folder titles.

The default output is an aligned table of title, type, id, and url. Use
--format with a Go template over {{.ID}}, {{.Title}}, {{.URL}}, {{.Type}},
{{.Depth}}, and {{.Prefix}} for custom layouts, --simple for titles only, or
--json for the target's raw dictionary.`,
		Example: `  safarimarks list
  safarimarks list BookmarksBar
  safarimarks list BookmarksBar Tools
  safarimarks ls -F '{{.Title}} {{.URL}}'
  safarimarks show --json 3B5180DB-831D-4F1A-AE4A-6482D28D66D5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			target, err := doc.Resolve(args...)
			if err != nil {
				return err
			}

			opts := renderOpts{json: asJSON, template: format, styled: a.color()}
			if simple {
				opts.template = simpleTemplate
			}
			if opts.template == "" {
				opts.template = a.cfg.Format
			}
			return renderTarget(cmd.OutOrStdout(), target, opts)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the target's plist dictionary as JSON")
	cmd.Flags().StringVarP(&format, "format", "F", "", "Go template applied to each listed item")
	cmd.Flags().BoolVar(&simple, "simple", false, "titles only, shorthand for -F '{{.Prefix}}{{.Title}}'")
	cmd.MarkFlagsMutuallyExclusive("json", "format", "simple")

	return cmd
}
