package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/errors"
)

func newRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove target...",
		Aliases: []string{"rm", "delete", "del"},
		Short:   "Delete bookmarks or folders",
		Long: `Remove one or more entries from the tree. Each target is a UUID or a
slash-separated path of titles; removing a folder removes its whole subtree.

All targets are resolved and detached before the file is written, so a
failing target leaves the file untouched.`,
		Example: `  safarimarks remove 3B5180DB-831D-4F1A-AE4A-6482D28D66D5
  safarimarks rm BookmarksBar/Tools
  safarimarks rm BookmarksBar/Go BookmarksMenu/News`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}

			for _, arg := range args {
				segments, err := splitTarget(arg)
				if err != nil {
					return err
				}
				target, err := doc.Resolve(segments...)
				if err != nil {
					return err
				}
				parent := target.Parent()
				if parent == nil {
					return errors.New(errors.ErrCodeInvalidItem, "cannot remove the root folder")
				}
				if err := parent.Remove(target); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("removed entry", "target", arg, "id", target.ID())
			}

			if err := a.save(cmd, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entr%s\n", len(args), plural(len(args), "y", "ies"))
			return nil
		},
	}
	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
