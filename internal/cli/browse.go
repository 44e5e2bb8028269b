package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/safarimarks/safarimarks/pkg/bookmarks"
)

func newBrowseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [target...]",
		Short: "Explore the bookmark tree interactively",
		Long: `Open a terminal browser over the bookmark tree. Folders expand and
collapse in place; bookmarks show their URL on the current line.

Keys: up/down or k/j move, enter or space toggles a folder, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd)
			if err != nil {
				return err
			}
			target, err := doc.Resolve(args...)
			if err != nil {
				return err
			}
			model := newBrowseModel(target)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	return cmd
}

// browseRow is one visible line of the tree.
type browseRow struct {
	item  *bookmarks.Item
	depth int
}

// browseModel is the bubbletea model for the interactive tree browser.
// Expansion state is keyed by node, which survives the re-flattening that
// happens after every toggle.
type browseModel struct {
	root     *bookmarks.Item
	rows     []browseRow
	expanded map[bookmarks.Node]bool
	cursor   int
	height   int
	offset   int
}

func newBrowseModel(root *bookmarks.Item) browseModel {
	m := browseModel{
		root:     root,
		expanded: map[bookmarks.Node]bool{root.Node(): true},
		height:   15,
	}
	m.flatten()
	return m
}

// flatten rebuilds the visible rows from the tree and the expansion state.
func (m *browseModel) flatten() {
	m.rows = m.rows[:0]
	m.appendRows(m.root, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) appendRows(item *bookmarks.Item, depth int) {
	m.rows = append(m.rows, browseRow{item: item, depth: depth})
	if item.IsFolder() && m.expanded[item.Node()] {
		for _, child := range item.Children() {
			m.appendRows(child, depth+1)
		}
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			row := m.rows[m.cursor]
			if row.item.IsFolder() {
				m.expanded[row.item.Node()] = !m.expanded[row.item.Node()]
				m.flatten()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Bookmarks"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("k/j navigate  enter toggle  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("> ")
		}

		indent := strings.Repeat("  ", row.depth)
		line := indent + browseLabel(row.item)
		if i == m.cursor {
			line = styleCursor.Render(line)
			if url := row.item.URL(); url != "" {
				line += "  " + styleLink.Render(url)
			}
		} else {
			line = browseStyle(row.item).Render(line)
		}

		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}

func browseLabel(item *bookmarks.Item) string {
	title := item.Title()
	if title == "" {
		title = "(untitled)"
	}
	if item.IsFolder() {
		return title + "/"
	}
	return title
}

func browseStyle(item *bookmarks.Item) lipgloss.Style {
	switch item.Type() {
	case bookmarks.TypeFolder:
		return styleFolder
	case bookmarks.TypeProxy:
		return styleProxy
	}
	return styleBookmark
}
