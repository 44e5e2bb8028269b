package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmptyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "empty folder...",
		Aliases: []string{"clear"},
		Short:   "Remove all children of a folder",
		Long: `Clear a folder without removing the folder itself. The target is a UUID
or a path of folder titles and must be a folder.`,
		Example: `  safarimarks empty BookmarksBar Tools
  safarimarks clear 3B5180DB-831D-4F1A-AE4A-6482D28D66D5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			target, err := doc.Resolve(args...)
			if err != nil {
				return err
			}
			n := target.Len()
			if err := target.Empty(); err != nil {
				return err
			}
			if err := a.save(cmd, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "emptied %q (%d entr%s removed)\n", target.Title(), n, plural(n, "y", "ies"))
			return nil
		},
	}
	return cmd
}
