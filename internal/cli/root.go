package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/internal/config"
	"github.com/safarimarks/safarimarks/pkg/bookmarks"
	"github.com/safarimarks/safarimarks/pkg/errors"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries the state shared by all commands: the --file flag value and
// the loaded configuration file.
type app struct {
	file    string
	noColor bool
	cfg     *config.Config
}

// color reports whether list output should be styled. The --no-color flag
// wins, then the config file's color key; lipgloss itself handles the
// not-a-terminal case.
func (a *app) color() bool {
	if a.noColor {
		return false
	}
	return a.cfg.Color == nil || *a.cfg.Color
}

// open loads the effective bookmarks file for the current invocation.
func (a *app) open(cmd *cobra.Command) (*bookmarks.Document, error) {
	path := a.cfg.BookmarksFile(a.file)
	doc, err := bookmarks.Open(path)
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("opened bookmarks", "path", path, "format", doc.Format())
	return doc, nil
}

// save writes the document back and logs the destination.
func (a *app) save(cmd *cobra.Command, doc *bookmarks.Document) error {
	if err := doc.Save(); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("saved bookmarks", "path", doc.Path(), "format", doc.Format())
	return nil
}

// Execute runs the safarimarks CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool
	a := &app{}

	root := &cobra.Command{
		Use:   "safarimarks",
		Short: "safarimarks manages Safari bookmarks from the command line",
		Long: `safarimarks is a CLI tool for managing the bookmark store Safari keeps in
Bookmarks.plist: listing, adding, removing, moving, and editing bookmarks and
folders without opening the browser.

Targets are addressed either by UUID or by a path of folder titles, so both
of these work:

  safarimarks list 3B5180DB-831D-4F1A-AE4A-6482D28D66D5
  safarimarks list BookmarksBar Tools`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("safarimarks %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "path to the bookmarks plist (default: Safari's)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable terminal colors")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newMoveCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newEmptyCmd(a))
	root.AddCommand(newBrowseCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newCompletionCmd())

	return root
}

// splitTarget splits one remove-style target argument into path segments.
// A target is either a UUID or a slash-separated title path.
func splitTarget(arg string) ([]string, error) {
	segments := strings.Split(arg, "/")
	if err := errors.ValidatePath(segments); err != nil {
		return nil, err
	}
	return segments, nil
}
