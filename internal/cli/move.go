package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/errors"
)

func newMoveCmd(a *app) *cobra.Command {
	var to []string

	cmd := &cobra.Command{
		Use:     "move target... --to destination",
		Aliases: []string{"mv"},
		Short:   "Re-parent a bookmark or folder",
		Long: `Move entries to the end of another folder's children. Each target is a
UUID or a slash-separated path of titles; --to addresses the destination
folder the same way, with repeated --to flags (or a comma-separated value)
forming a title path.

Moving a folder into itself or into one of its own subfolders is rejected.`,
		Example: `  safarimarks move BookmarksMenu/Go --to BookmarksBar
  safarimarks mv 3B5180DB-831D-4F1A-AE4A-6482D28D66D5 --to BookmarksBar,Tools`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			dest, err := doc.Resolve(to...)
			if err != nil {
				return err
			}
			if !dest.IsFolder() {
				return errors.New(errors.ErrCodeInvalidDestination, "%s %q cannot hold children", dest.Type(), dest.Title())
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
				if err := dest.Append(target); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("moved entry", "target", arg, "to", dest.Title())
			}

			if err := a.save(cmd, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moved %d entr%s into %q\n", len(args), plural(len(args), "y", "ies"), dest.Title())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "destination folder (UUID or title path)")
	cmd.MarkFlagRequired("to")

	return cmd
}
