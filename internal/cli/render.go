package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/safarimarks/safarimarks/pkg/bookmarks"
	"github.com/safarimarks/safarimarks/pkg/errors"
)

// Row is the data available to a --format template, one instance per listed
// item.
type Row struct {
	ID     string // node identifier
	Title  string // display title, newlines stripped
	URL    string // bookmark URL, empty for folders and proxies
	Type   string // "bookmark", "folder", or "proxy"
	Depth  int    // nesting depth below the listed target
	Prefix string // two spaces per depth level
}

// simpleTemplate is what --simple expands to.
const simpleTemplate = "{{.Prefix}}{{.Title}}"

// renderOpts controls list output.
type renderOpts struct {
	json     bool   // structured output of the target's plist form
	template string // per-item template, empty selects the column layout
	styled   bool   // apply lipgloss styles to the column layout
}

// renderTarget writes the listing for item to w. Folders list their
// children; anything else lists the item itself.
func renderTarget(w io.Writer, item *bookmarks.Item, opts renderOpts) error {
	if opts.json {
		return renderJSON(w, item)
	}

	var tmpl *template.Template
	if opts.template != "" {
		var err error
		tmpl, err = template.New("item").Parse(opts.template)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid format template")
		}
	}

	if item.IsFolder() {
		return renderChildren(w, item, tmpl, 0, opts.styled)
	}
	return renderItem(w, item, tmpl, 0, opts.styled)
}

func renderChildren(w io.Writer, item *bookmarks.Item, tmpl *template.Template, depth int, styled bool) error {
	for _, child := range item.Children() {
		if err := renderItem(w, child, tmpl, depth, styled); err != nil {
			return err
		}
	}
	return nil
}

func renderItem(w io.Writer, item *bookmarks.Item, tmpl *template.Template, depth int, styled bool) error {
	row := Row{
		ID:     item.ID(),
		Title:  strings.ReplaceAll(item.Title(), "\n", ""),
		URL:    item.URL(),
		Type:   item.Type(),
		Depth:  depth,
		Prefix: strings.Repeat("  ", depth),
	}

	if tmpl != nil {
		if err := tmpl.Execute(w, row); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "execute format template")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	} else if err := renderColumns(w, item, row, styled); err != nil {
		return err
	}

	if item.IsFolder() {
		return renderChildren(w, item, tmpl, depth+1, styled)
	}
	return nil
}

// renderColumns writes the default aligned layout: title, type, id, url.
// Padding happens before styling so ANSI escapes don't skew the columns.
func renderColumns(w io.Writer, item *bookmarks.Item, row Row, styled bool) error {
	title := pad(row.Prefix+row.Title, 50)
	typ := pad(row.Type, 9)
	id := pad(row.ID, 38)
	url := row.URL

	if styled {
		switch row.Type {
		case bookmarks.TypeFolder:
			title = styleFolder.Render(title)
		case bookmarks.TypeProxy:
			title = styleProxy.Render(title)
		default:
			title = styleBookmark.Render(title)
		}
		id = styleID.Render(id)
		if url != "" {
			url = styleLink.Render(url)
		}
	}

	_, err := fmt.Fprintf(w, "%s %s %s %s\n", title, typ, id, url)
	return err
}

// renderJSON writes the item's canonical plist dictionary as indented JSON.
func renderJSON(w io.Writer, item *bookmarks.Item) error {
	data, err := json.MarshalIndent(item.Node().Plist(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// pad right-pads s with spaces to at least width characters.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
