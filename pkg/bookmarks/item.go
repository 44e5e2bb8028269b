package bookmarks

import (
	"strings"

	"github.com/safarimarks/safarimarks/pkg/errors"
)

// Type names reported by [Item.Type] for display purposes.
const (
	TypeBookmark = "bookmark"
	TypeFolder   = "folder"
	TypeProxy    = "proxy"
)

// Item is a parent-aware view over a [Node]. It adds navigation (lookup by
// UUID or title path, ancestry) and structurally safe mutation on top of the
// pure data model.
//
// Items are ephemeral: [Item.Children] builds fresh wrappers on every call,
// each carrying a parent reference back to its receiver. Two Items are
// considered the same entry when their underlying nodes are structurally
// equal; wrapper identity itself is never stable across calls.
type Item struct {
	node   Node
	parent *Item

	// root marks the document root, which is never movable even though it
	// is a folder.
	root bool
}

// NewItem wraps a node as a parentless item.
func NewItem(n Node) *Item {
	return &Item{node: n}
}

// Node returns the underlying node.
func (it *Item) Node() Node { return it.node }

// Parent returns the folder item this item was navigated from, or nil.
func (it *Item) Parent() *Item { return it.parent }

// ID returns the node's identifier.
func (it *Item) ID() string { return it.node.UUID() }

// Title returns the node's display title. For bookmarks this is the title
// stored inside the URI dictionary.
func (it *Item) Title() string {
	switch n := it.node.(type) {
	case *Leaf:
		return n.Title()
	case *List:
		return n.Title
	case *Proxy:
		return n.Title
	}
	return ""
}

// SetTitle updates the display title. Every variant carries a title, so this
// never fails; bookmarks store theirs inside the URI dictionary.
func (it *Item) SetTitle(title string) {
	switch n := it.node.(type) {
	case *Leaf:
		n.SetTitle(title)
	case *List:
		n.Title = title
	case *Proxy:
		n.Title = title
	}
}

// URL returns the bookmark URL, or "" for folders and proxies.
func (it *Item) URL() string {
	if leaf, ok := it.node.(*Leaf); ok {
		return leaf.URL
	}
	return ""
}

// SetURL updates the bookmark URL. Only bookmarks carry a URL; any other
// variant yields UNSUPPORTED_FIELD_UPDATE.
func (it *Item) SetURL(url string) error {
	leaf, ok := it.node.(*Leaf)
	if !ok {
		return errors.New(errors.ErrCodeUnsupportedField, "cannot update url of %s %q", it.Type(), it.Title())
	}
	leaf.URL = url
	return nil
}

// Type returns the display type name: "bookmark", "folder", or "proxy".
func (it *Item) Type() string {
	switch it.node.(type) {
	case *Leaf:
		return TypeBookmark
	case *List:
		return TypeFolder
	case *Proxy:
		return TypeProxy
	}
	return ""
}

// IsBookmark reports whether the item is a bookmark leaf.
func (it *Item) IsBookmark() bool {
	_, ok := it.node.(*Leaf)
	return ok
}

// IsFolder reports whether the item is a folder.
func (it *Item) IsFolder() bool {
	_, ok := it.node.(*List)
	return ok
}

// Movable reports whether the item may be appended to or removed from a
// folder. Proxies and the document root are fixed.
func (it *Item) Movable() bool {
	if it.root {
		return false
	}
	switch it.node.(type) {
	case *Leaf, *List:
		return true
	}
	return false
}

// Len returns the number of children. Zero for non-folders.
func (it *Item) Len() int {
	if list, ok := it.node.(*List); ok {
		return len(list.Children)
	}
	return 0
}

// Children returns one fresh wrapper per child node, in display order, each
// with its parent reference set to it. Non-folders have no children.
func (it *Item) Children() []*Item {
	list, ok := it.node.(*List)
	if !ok {
		return nil
	}
	children := make([]*Item, len(list.Children))
	for i, n := range list.Children {
		children[i] = &Item{node: n, parent: it}
	}
	return children
}

// Equal reports whether two items wrap structurally equal nodes.
func (it *Item) Equal(other *Item) bool {
	if other == nil {
		return false
	}
	return Equal(it.node, other.node)
}

// Get searches it and all descendants for a node with the given identifier.
// The comparison is case-insensitive and the search is depth-first pre-order,
// so with duplicate identifiers the first match in document order wins.
// Returns nil when no node matches.
func (it *Item) Get(id string) *Item {
	if strings.EqualFold(it.ID(), id) {
		return it
	}
	for _, child := range it.Children() {
		if found := child.Get(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk descends through child titles. Zero segments return it; otherwise the
// first child whose title exactly equals the first segment is followed with
// the remaining segments. Matching is case-sensitive with no backtracking:
// if the first matching sibling has no matching continuation, the walk fails
// rather than trying a later sibling. Returns nil when any segment has no
// match.
func (it *Item) Walk(titles ...string) *Item {
	if len(titles) == 0 {
		return it
	}
	for _, child := range it.Children() {
		if child.Title() == titles[0] {
			return child.Walk(titles[1:]...)
		}
	}
	return nil
}

// Resolve finds a descendant by either addressing mode: a single segment is
// tried as an identifier first and as a title second; multiple segments are
// always a title path. Zero segments resolve to it. Fails with
// TARGET_NOT_FOUND when nothing matches.
func (it *Item) Resolve(segments ...string) (*Item, error) {
	if len(segments) == 1 {
		if found := it.Get(segments[0]); found != nil {
			return found, nil
		}
	}
	if found := it.Walk(segments...); found != nil {
		return found, nil
	}
	return nil, errors.New(errors.ErrCodeTargetNotFound, "target %q not found", strings.Join(segments, "/"))
}

// Append attaches child to the end of it's children.
//
// The receiver must be a folder (NOT_A_FOLDER) and the child movable
// (INVALID_ITEM). Appending a child already directly under it is a no-op.
// Appending a folder to itself or to one of its own descendants is rejected
// with INVALID_DESTINATION: naive remove-then-insert would detach the
// subtree from the document entirely. If the child currently has another
// parent it is detached from it first, so Append doubles as move.
func (it *Item) Append(child *Item) error {
	list, ok := it.node.(*List)
	if !ok {
		return errors.New(errors.ErrCodeNotAFolder, "%s %q is not a folder", it.Type(), it.Title())
	}
	if !child.Movable() {
		return errors.New(errors.ErrCodeInvalidItem, "%s %q cannot be moved", child.Type(), child.Title())
	}
	if it.indexOf(child) >= 0 {
		return nil
	}
	if sub, ok := child.node.(*List); ok {
		if child.node == it.node || subtreeContains(sub, it.node) {
			return errors.New(errors.ErrCodeInvalidDestination, "cannot move folder %q into itself", child.Title())
		}
	}
	if p := child.parent; p != nil {
		if err := p.Remove(child); err != nil {
			return err
		}
	}
	list.Children = append(list.Children, child.node)
	child.parent = it
	return nil
}

// Remove detaches child from it's children and clears its parent reference.
// The child must be movable (INVALID_ITEM) and currently a direct child of
// it (NOT_A_CHILD).
func (it *Item) Remove(child *Item) error {
	i := it.indexOf(child)
	if i < 0 {
		return errors.New(errors.ErrCodeNotAChild, "%q is not a child of %q", child.Title(), it.Title())
	}
	if !child.Movable() {
		return errors.New(errors.ErrCodeInvalidItem, "%s %q cannot be removed", child.Type(), child.Title())
	}
	list := it.node.(*List)
	list.Children = append(list.Children[:i], list.Children[i+1:]...)
	child.parent = nil
	return nil
}

// Empty clears all children of a folder. Non-folders yield NOT_A_LIST.
func (it *Item) Empty() error {
	list, ok := it.node.(*List)
	if !ok {
		return errors.New(errors.ErrCodeNotAList, "%s %q is not a list", it.Type(), it.Title())
	}
	list.Children = []Node{}
	return nil
}

// AddBookmark constructs a bookmark and appends it. The title, when given,
// is stored in the URI dictionary. An empty id generates a fresh UUID.
func (it *Item) AddBookmark(url, title, id string) (*Item, error) {
	if url == "" {
		return nil, errors.New(errors.ErrCodeMissingField, "bookmark requires a url")
	}
	if id == "" {
		id = NewUUID()
	}
	leaf := &Leaf{ID: id, URL: url, URI: map[string]any{}}
	if title != "" {
		leaf.SetTitle(title)
	}
	item := NewItem(leaf)
	if err := it.Append(item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddFolder constructs an empty folder and appends it. An empty id generates
// a fresh UUID.
func (it *Item) AddFolder(title, id string) (*Item, error) {
	if id == "" {
		id = NewUUID()
	}
	list := &List{ID: id, Title: title, Children: []Node{}}
	item := NewItem(list)
	if err := it.Append(item); err != nil {
		return nil, err
	}
	return item, nil
}

// indexOf returns the position of child among it's direct children, matching
// by structural node equality, or -1. Non-folders have no children.
func (it *Item) indexOf(child *Item) int {
	list, ok := it.node.(*List)
	if !ok {
		return -1
	}
	for i, n := range list.Children {
		if Equal(n, child.node) {
			return i
		}
	}
	return -1
}

// subtreeContains reports whether target occurs in list's subtree, compared
// by node identity. Identity rather than structural equality matters here:
// the cycle guard must track the actual object graph, not lookalike copies.
func subtreeContains(list *List, target Node) bool {
	for _, n := range list.Children {
		if n == target {
			return true
		}
		if sub, ok := n.(*List); ok && subtreeContains(sub, target) {
			return true
		}
	}
	return false
}
