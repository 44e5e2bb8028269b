package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/safarimarks/safarimarks/pkg/bookmarks"
	"github.com/safarimarks/safarimarks/pkg/errors"
	"github.com/safarimarks/safarimarks/pkg/plistio"
)

// cliFixture mirrors the shape of a real Safari store: a root folder holding
// the History proxy, the bookmarks bar, and the bookmarks menu.
func cliFixture() map[string]any {
	return map[string]any{
		"WebBookmarkFileVersion": uint64(1),
		"WebBookmarkType":        "WebBookmarkTypeList",
		"WebBookmarkUUID":        "ROOT",
		"Title":                  "",
		"Children": []any{
			map[string]any{
				"WebBookmarkType":       "WebBookmarkTypeProxy",
				"WebBookmarkUUID":       "HIST",
				"WebBookmarkIdentifier": "History",
				"Title":                 "History",
			},
			map[string]any{
				"WebBookmarkType": "WebBookmarkTypeList",
				"WebBookmarkUUID": "BAR",
				"Title":           "BookmarksBar",
				"Children": []any{
					map[string]any{
						"WebBookmarkType": "WebBookmarkTypeLeaf",
						"WebBookmarkUUID": "L1",
						"URLString":       "https://go.dev",
						"URIDictionary":   map[string]any{"title": "Go"},
					},
					map[string]any{
						"WebBookmarkType": "WebBookmarkTypeList",
						"WebBookmarkUUID": "SUB",
						"Title":           "Sub",
						"Children":        []any{},
					},
				},
			},
			map[string]any{
				"WebBookmarkType": "WebBookmarkTypeList",
				"WebBookmarkUUID": "MENU",
				"Title":           "BookmarksMenu",
				"Children":        []any{},
			},
		},
	}
}

// writeCLIFixture writes the fixture store to a fresh temp file.
func writeCLIFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Bookmarks.plist")
	if err := plistio.WriteFile(path, cliFixture(), plistio.Binary); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// runCLI executes the root command with the given arguments and returns the
// combined output. The config file lookup is pointed at an empty directory so
// a developer's real config cannot leak into the test.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// reopen reads the store back after a mutating command.
func reopen(t *testing.T, path string) *bookmarks.Document {
	t.Helper()
	doc, err := bookmarks.Open(path)
	if err != nil {
		t.Fatalf("reopen %s: %v", path, err)
	}
	return doc
}

func TestListRoot(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"History", "proxy", "BookmarksBar", "folder", "Go", "https://go.dev", "BookmarksMenu"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestListPath(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list", "BookmarksBar")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "Go") || strings.Contains(out, "BookmarksMenu") {
		t.Errorf("listing a folder should show only its subtree:\n%s", out)
	}
}

func TestListByIDCaseInsensitive(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list", "l1")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "https://go.dev") {
		t.Errorf("lookup by lowercase id should find the bookmark:\n%s", out)
	}
}

func TestListTemplate(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list", "BookmarksBar", "-F", "{{.Title}}|{{.URL}}")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if want := "Go|https://go.dev\nSub|\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListSimple(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list", "BookmarksBar", "--simple")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if want := "Go\nSub\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListJSON(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "list", "--json", "BAR")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{`"WebBookmarkUUID": "BAR"`, `"URLString": "https://go.dev"`} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %q:\n%s", want, out)
		}
	}
}

func TestListNotFound(t *testing.T) {
	path := writeCLIFixture(t)
	_, err := runCLI(t, "--file", path, "list", "NoSuchFolder")
	if !errors.Is(err, errors.ErrCodeTargetNotFound) {
		t.Errorf("error = %v, want TARGET_NOT_FOUND", err)
	}
}

func TestAddBookmark(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "add", "BookmarksBar", "--url", "https://go.dev/blog", "--title", "Blog")
	if err != nil {
		t.Fatalf("add error = %v", err)
	}
	if !strings.Contains(out, "added bookmark") {
		t.Errorf("unexpected output: %q", out)
	}

	doc := reopen(t, path)
	item, err := doc.Resolve("BookmarksBar", "Blog")
	if err != nil {
		t.Fatalf("added bookmark not found: %v", err)
	}
	if item.URL() != "https://go.dev/blog" {
		t.Errorf("url = %q, want %q", item.URL(), "https://go.dev/blog")
	}
	if item.ID() == "" {
		t.Error("added bookmark should get a generated UUID")
	}
}

func TestAddFolderWithUUID(t *testing.T) {
	path := writeCLIFixture(t)
	id := "3b5180db-831d-4f1a-ae4a-6482d28d66d5"
	_, err := runCLI(t, "--file", path, "add", "BookmarksMenu", "--folder", "--title", "Tools", "--uuid", id)
	if err != nil {
		t.Fatalf("add error = %v", err)
	}

	doc := reopen(t, path)
	item, err := doc.Resolve(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("added folder not found: %v", err)
	}
	if !item.IsFolder() || item.Title() != "Tools" {
		t.Errorf("resolved %s %q, want folder \"Tools\"", item.Type(), item.Title())
	}
	if item.ID() != strings.ToUpper(id) {
		t.Errorf("id = %q, want canonical uppercase form", item.ID())
	}
}

func TestAddErrors(t *testing.T) {
	path := writeCLIFixture(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no url or folder", []string{"add", "BookmarksBar"}, errors.ErrCodeMissingField},
		{"folder without title", []string{"add", "--folder"}, errors.ErrCodeMissingField},
		{"bad uuid", []string{"add", "--url", "https://x", "--uuid", "nope"}, errors.ErrCodeInvalidInput},
		{"bookmark destination", []string{"add", "BookmarksBar", "Go", "--url", "https://x"}, errors.ErrCodeInvalidDestination},
		{"missing destination", []string{"add", "Nowhere", "--url", "https://x"}, errors.ErrCodeTargetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"--file", path}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "remove", "BookmarksBar/Go")
	if err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if !strings.Contains(out, "removed 1 entry") {
		t.Errorf("unexpected output: %q", out)
	}

	doc := reopen(t, path)
	if _, err := doc.Resolve("BookmarksBar", "Go"); !errors.Is(err, errors.ErrCodeTargetNotFound) {
		t.Errorf("bookmark should be gone, got %v", err)
	}
	if _, err := doc.Resolve("BookmarksBar"); err != nil {
		t.Errorf("parent folder should survive: %v", err)
	}
}

func TestRemoveMultiple(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "remove", "BookmarksBar/Go", "BookmarksBar/Sub")
	if err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if !strings.Contains(out, "removed 2 entries") {
		t.Errorf("unexpected output: %q", out)
	}
	if n := reopen(t, path).Root().Walk("BookmarksBar").Len(); n != 0 {
		t.Errorf("BookmarksBar has %d children, want 0", n)
	}
}

func TestRemoveByID(t *testing.T) {
	path := writeCLIFixture(t)
	if _, err := runCLI(t, "--file", path, "remove", "L1"); err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if _, err := reopen(t, path).Resolve("L1"); !errors.Is(err, errors.ErrCodeTargetNotFound) {
		t.Errorf("bookmark should be gone, got %v", err)
	}
}

func TestRemoveErrors(t *testing.T) {
	path := writeCLIFixture(t)
	tests := []struct {
		name   string
		target string
		code   errors.Code
	}{
		{"root", "ROOT", errors.ErrCodeInvalidItem},
		{"proxy", "HIST", errors.ErrCodeInvalidItem},
		{"missing", "Nowhere", errors.ErrCodeTargetNotFound},
		{"empty segment", "BookmarksBar//Go", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "--file", path, "remove", tt.target)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestMove(t *testing.T) {
	path := writeCLIFixture(t)
	if _, err := runCLI(t, "--file", path, "move", "BookmarksBar/Go", "--to", "BookmarksMenu"); err != nil {
		t.Fatalf("move error = %v", err)
	}

	doc := reopen(t, path)
	if _, err := doc.Resolve("BookmarksMenu", "Go"); err != nil {
		t.Errorf("bookmark should be under BookmarksMenu: %v", err)
	}
	if _, err := doc.Resolve("BookmarksBar", "Go"); !errors.Is(err, errors.ErrCodeTargetNotFound) {
		t.Errorf("bookmark should have left BookmarksBar, got %v", err)
	}
}

func TestMoveTitlePathDestination(t *testing.T) {
	path := writeCLIFixture(t)
	if _, err := runCLI(t, "--file", path, "move", "L1", "--to", "BookmarksBar,Sub"); err != nil {
		t.Fatalf("move error = %v", err)
	}
	if _, err := reopen(t, path).Resolve("BookmarksBar", "Sub", "Go"); err != nil {
		t.Errorf("bookmark should be under Sub: %v", err)
	}
}

func TestMoveIntoOwnSubtree(t *testing.T) {
	path := writeCLIFixture(t)
	_, err := runCLI(t, "--file", path, "move", "BookmarksBar", "--to", "BookmarksBar,Sub")
	if !errors.Is(err, errors.ErrCodeInvalidDestination) {
		t.Fatalf("error = %v, want INVALID_DESTINATION", err)
	}
	// The failed move must not have been written back.
	if _, err := reopen(t, path).Resolve("BookmarksBar", "Go"); err != nil {
		t.Errorf("tree should be unchanged after rejected move: %v", err)
	}
}

func TestMoveToBookmarkFails(t *testing.T) {
	path := writeCLIFixture(t)
	_, err := runCLI(t, "--file", path, "move", "SUB", "--to", "L1")
	if !errors.Is(err, errors.ErrCodeInvalidDestination) {
		t.Errorf("error = %v, want INVALID_DESTINATION", err)
	}
}

func TestEditTitle(t *testing.T) {
	path := writeCLIFixture(t)
	if _, err := runCLI(t, "--file", path, "edit", "BookmarksBar", "Go", "--title", "Golang"); err != nil {
		t.Fatalf("edit error = %v", err)
	}
	item, err := reopen(t, path).Resolve("BookmarksBar", "Golang")
	if err != nil {
		t.Fatalf("renamed bookmark not found: %v", err)
	}
	if item.URL() != "https://go.dev" {
		t.Errorf("url should be untouched, got %q", item.URL())
	}
}

func TestEditURL(t *testing.T) {
	path := writeCLIFixture(t)
	if _, err := runCLI(t, "--file", path, "edit", "L1", "--url", "https://golang.org"); err != nil {
		t.Fatalf("edit error = %v", err)
	}
	item, err := reopen(t, path).Resolve("L1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if item.URL() != "https://golang.org" {
		t.Errorf("url = %q, want %q", item.URL(), "https://golang.org")
	}
}

func TestEditErrors(t *testing.T) {
	path := writeCLIFixture(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"url on folder", []string{"edit", "BookmarksBar", "--url", "https://x"}, errors.ErrCodeUnsupportedField},
		{"no changes", []string{"edit", "L1"}, errors.ErrCodeInvalidInput},
		{"missing target", []string{"edit", "Nowhere", "--title", "x"}, errors.ErrCodeTargetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"--file", path}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "empty", "BookmarksBar")
	if err != nil {
		t.Fatalf("empty error = %v", err)
	}
	if !strings.Contains(out, "2 entries removed") {
		t.Errorf("unexpected output: %q", out)
	}

	doc := reopen(t, path)
	bar := doc.Root().Walk("BookmarksBar")
	if bar == nil {
		t.Fatal("BookmarksBar should survive being emptied")
	}
	if bar.Len() != 0 {
		t.Errorf("BookmarksBar has %d children, want 0", bar.Len())
	}
}

func TestEmptyBookmarkFails(t *testing.T) {
	path := writeCLIFixture(t)
	_, err := runCLI(t, "--file", path, "empty", "L1")
	if !errors.Is(err, errors.ErrCodeNotAList) {
		t.Errorf("error = %v, want NOT_A_LIST", err)
	}
}

func TestExportDOT(t *testing.T) {
	path := writeCLIFixture(t)
	out, err := runCLI(t, "--file", path, "export")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	for _, want := range []string{"digraph bookmarks {", `"BAR" -> "L1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := writeCLIFixture(t)
	_, err := runCLI(t, "--file", path, "export", "--format", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestSaveKeepsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks.plist")
	if err := plistio.WriteFile(path, cliFixture(), plistio.XML); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := runCLI(t, "--file", path, "remove", "L1"); err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if doc := reopen(t, path); doc.Format() != plistio.XML {
		t.Errorf("format = %v, want XML preserved across save", doc.Format())
	}
}

func TestMissingFile(t *testing.T) {
	_, err := runCLI(t, "--file", filepath.Join(t.TempDir(), "nope.plist"), "list")
	if err == nil {
		t.Fatal("expected an error for a missing store")
	}
}
