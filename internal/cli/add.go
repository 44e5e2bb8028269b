package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/bookmarks"
	"github.com/safarimarks/safarimarks/pkg/errors"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		title  string
		url    string
		folder bool
		uuid   string
	)

	cmd := &cobra.Command{
		Use:     "add [destination...]",
		Aliases: []string{"a", "create"},
		Short:   "Create a bookmark or folder",
		Long: `Add a new bookmark (--url) or an empty folder (--folder) under the given
destination folder. Without a destination the entry goes directly under the
root.

A UUID is generated unless --uuid supplies one. Supplied UUIDs are validated
and stored uppercase, the way Safari writes them.`,
		Example: `  safarimarks add BookmarksBar --url https://go.dev --title Go
  safarimarks add BookmarksBar --folder --title Tools
  safarimarks add --url https://go.dev/blog --uuid 3b5180db-831d-4f1a-ae4a-6482d28d66d5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !folder && url == "" {
				return errors.New(errors.ErrCodeMissingField, "either --url or --folder is required")
			}
			if folder && title == "" {
				return errors.New(errors.ErrCodeMissingField, "folders require a --title")
			}
			if uuid != "" {
				if err := errors.ValidateUUID(uuid); err != nil {
					return err
				}
				uuid = strings.ToUpper(uuid)
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
			dest, err := doc.Resolve(args...)
			if err != nil {
				return err
			}
			if !dest.IsFolder() {
				return errors.New(errors.ErrCodeInvalidDestination, "%s %q cannot hold children", dest.Type(), dest.Title())
			}

			var added *bookmarks.Item
			if folder {
				added, err = dest.AddFolder(title, uuid)
			} else {
				added, err = dest.AddBookmark(url, title, uuid)
			}
			if err != nil {
				return err
			}
			if err := a.save(cmd, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s %q (%s)\n", added.Type(), added.Title(), added.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title of the new entry")
	cmd.Flags().StringVarP(&url, "url", "u", "", "url of the new bookmark")
	cmd.Flags().BoolVar(&folder, "folder", false, "create a folder instead of a bookmark")
	cmd.Flags().StringVar(&uuid, "uuid", "", "explicit UUID for the new entry")
	cmd.MarkFlagsMutuallyExclusive("url", "folder")

	return cmd
}
