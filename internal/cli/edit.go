package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/errors"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		title string
		url   string
	)

	cmd := &cobra.Command{
		Use:     "edit target... [--title t] [--url u]",
		Aliases: []string{"e", "update", "change"},
		Short:   "Change a title or URL",
		Long: `Update fields of an existing entry. The target is a UUID or a path of
folder titles. Titles can be set on any entry; URLs only on bookmarks.

Passing an empty value clears the field, so --title "" and leaving --title
off are different things.`,
		Example: `  safarimarks edit BookmarksBar Go --title Golang
  safarimarks edit 3B5180DB-831D-4F1A-AE4A-6482D28D66D5 --url https://go.dev`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("url") {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to change: pass --title and/or --url")
			}
			if title != "" {
				if err := errors.ValidateTitle(title); err != nil {
					return err
				}
			}

			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			target, err := doc.Resolve(args...)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("url") {
				if err := target.SetURL(url); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("title") {
				target.SetTitle(title)
			}

			if err := a.save(cmd, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s %q (%s)\n", target.Type(), target.Title(), target.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&url, "url", "u", "", "new url (bookmarks only)")

	return cmd
}
