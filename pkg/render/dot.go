// Package render turns a bookmark tree into Graphviz visualizations.
//
// The tree is expressed as DOT with one box per node and one edge per
// parent-child relation, then rasterized through the embedded Graphviz
// engine. Folders render as filled boxes, bookmarks as plain boxes with
// their URL beneath the title, and proxies as dashed grey boxes.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/safarimarks/safarimarks/pkg/bookmarks"
)

// ToDOT converts the tree rooted at item to Graphviz DOT format.
// Node identifiers in the graph are the bookmark UUIDs, so the output is
// stable across runs for an unchanged document.
func ToDOT(item *bookmarks.Item) string {
	var buf bytes.Buffer
	buf.WriteString("digraph bookmarks {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	writeNode(&buf, item)
	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, item *bookmarks.Item) {
	fmt.Fprintf(buf, "  %q [%s];\n", nodeID(item), strings.Join(nodeAttrs(item), ", "))
	for _, child := range item.Children() {
		writeNode(buf, child)
		fmt.Fprintf(buf, "  %q -> %q;\n", nodeID(item), nodeID(child))
	}
}

// nodeID returns a graph-unique identifier for the item. Synthetic roots may
// lack a UUID; their title has to do.
func nodeID(item *bookmarks.Item) string {
	if id := item.ID(); id != "" {
		return id
	}
	return "root:" + item.Title()
}

func nodeAttrs(item *bookmarks.Item) []string {
	label := item.Title()
	if label == "" {
		label = "(untitled)"
	}

	switch item.Type() {
	case bookmarks.TypeFolder:
		return []string{
			fmt.Sprintf("label=%q", label),
			"fillcolor=lightyellow",
		}
	case bookmarks.TypeProxy:
		return []string{
			fmt.Sprintf("label=%q", label),
			"style=\"rounded,filled,dashed\"",
			"fillcolor=lightgrey",
		}
	default:
		return []string{
			fmt.Sprintf("label=%q", label+"\n"+item.URL()),
		}
	}
}

// SVG renders a DOT graph to SVG using the embedded Graphviz engine.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using the embedded Graphviz engine.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
