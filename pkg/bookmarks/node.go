package bookmarks

import (
	"maps"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/safarimarks/safarimarks/pkg/errors"
)

// Kind identifies which of the three WebBookmarkType variants a node is.
type Kind string

// The three discriminator values Safari uses.
const (
	KindLeaf  Kind = "WebBookmarkTypeLeaf"
	KindList  Kind = "WebBookmarkTypeList"
	KindProxy Kind = "WebBookmarkTypeProxy"
)

// Canonical plist field names.
const (
	keyUUID     = "WebBookmarkUUID"
	keyType     = "WebBookmarkType"
	keyURL      = "URLString"
	keyURI      = "URIDictionary"
	keyURITitle = "title"
	keyTitle    = "Title"
	keyChildren = "Children"
)

// Node is one entry in the bookmark tree: a bookmark ([Leaf]), a folder
// ([List]), or a reference to a synthetic system collection ([Proxy]).
//
// Nodes are pure data. Navigation state (parent links) lives in [Item].
type Node interface {
	// UUID returns the stable identifier. It may be empty for synthetic
	// root nodes that were decoded without one.
	UUID() string

	// Kind returns the discriminator tag of the variant.
	Kind() Kind

	// Plist returns the canonical plist dictionary for the node, with all
	// Extra fields merged back in. Typed fields win on key collision.
	Plist() map[string]any
}

// Leaf is a bookmark. Its display title is not a top-level field: Safari
// stores it under the "title" key of URIDictionary, alongside other URI
// metadata this model does not interpret.
type Leaf struct {
	ID  string
	URL string

	// URI holds the URIDictionary contents, including the title. A nil map
	// means the key was absent in the source document and is not emitted.
	URI map[string]any

	// Extra holds unmodeled top-level fields, keyed by their plist names.
	Extra map[string]any
}

// UUID returns the bookmark's identifier.
func (l *Leaf) UUID() string { return l.ID }

// Kind returns KindLeaf.
func (l *Leaf) Kind() Kind { return KindLeaf }

// Title returns the display title from the URI dictionary, or "" if unset.
func (l *Leaf) Title() string {
	if t, ok := l.URI[keyURITitle].(string); ok {
		return t
	}
	return ""
}

// SetTitle stores the display title in the URI dictionary.
func (l *Leaf) SetTitle(title string) {
	if l.URI == nil {
		l.URI = make(map[string]any, 1)
	}
	l.URI[keyURITitle] = title
}

// Plist implements Node.
func (l *Leaf) Plist() map[string]any {
	d := make(map[string]any, len(l.Extra)+4)
	maps.Copy(d, l.Extra)
	d[keyType] = string(KindLeaf)
	if l.ID != "" {
		d[keyUUID] = l.ID
	}
	d[keyURL] = l.URL
	if l.URI != nil {
		d[keyURI] = maps.Clone(l.URI)
	}
	return d
}

// List is a folder. Children order is the display order and is preserved
// through every decode-encode cycle and mutation.
type List struct {
	ID    string
	Title string

	// Children is the ordered child sequence. A nil slice means the
	// Children key was absent in the source document and is not emitted.
	Children []Node

	// Extra holds unmodeled top-level fields, keyed by their plist names.
	Extra map[string]any
}

// UUID returns the folder's identifier.
func (l *List) UUID() string { return l.ID }

// Kind returns KindList.
func (l *List) Kind() Kind { return KindList }

// Plist implements Node.
func (l *List) Plist() map[string]any {
	d := make(map[string]any, len(l.Extra)+4)
	maps.Copy(d, l.Extra)
	d[keyType] = string(KindList)
	if l.ID != "" {
		d[keyUUID] = l.ID
	}
	d[keyTitle] = l.Title
	if l.Children != nil {
		children := make([]any, len(l.Children))
		for i, c := range l.Children {
			children[i] = c.Plist()
		}
		d[keyChildren] = children
	}
	return d
}

// Proxy references a synthetic system collection such as History. It has no
// children and is never a valid mutation target.
type Proxy struct {
	ID    string
	Title string

	// Extra holds unmodeled top-level fields, keyed by their plist names.
	Extra map[string]any
}

// UUID returns the proxy's identifier.
func (p *Proxy) UUID() string { return p.ID }

// Kind returns KindProxy.
func (p *Proxy) Kind() Kind { return KindProxy }

// Plist implements Node.
func (p *Proxy) Plist() map[string]any {
	d := make(map[string]any, len(p.Extra)+3)
	maps.Copy(d, p.Extra)
	d[keyType] = string(KindProxy)
	if p.ID != "" {
		d[keyUUID] = p.ID
	}
	d[keyTitle] = p.Title
	return d
}

// Equal reports whether two nodes are structurally equal, i.e. their encoded
// plist forms are identical including all Extra fields.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.Plist(), b.Plist())
}

// NewUUID generates a fresh identifier in Safari's canonical uppercase form.
func NewUUID() string {
	return strings.ToUpper(uuid.NewString())
}

// Decode converts a generic plist dictionary into the matching Node variant.
//
// Recognized fields populate the typed attributes; everything else is kept
// verbatim in the variant's Extra bag. Children of a folder are decoded
// recursively, preserving order. An unrecognized WebBookmarkType yields an
// UNKNOWN_NODE_KIND error.
func Decode(dict map[string]any) (Node, error) {
	kind, _ := dict[keyType].(string)
	switch Kind(kind) {
	case KindLeaf:
		return decodeLeaf(dict)
	case KindList:
		return decodeList(dict)
	case KindProxy:
		return decodeProxy(dict)
	default:
		return nil, errors.New(errors.ErrCodeUnknownNodeKind, "unknown bookmark type %q", kind)
	}
}

func decodeLeaf(dict map[string]any) (*Leaf, error) {
	url, ok := dict[keyURL].(string)
	if !ok || url == "" {
		return nil, errors.New(errors.ErrCodeMissingField, "bookmark %s is missing %s", describeDict(dict), keyURL)
	}
	leaf := &Leaf{
		ID:    stringField(dict, keyUUID),
		URL:   url,
		Extra: extraFields(dict, keyUUID, keyType, keyURL, keyURI),
	}
	if uri, ok := dict[keyURI].(map[string]any); ok {
		leaf.URI = maps.Clone(uri)
	}
	return leaf, nil
}

func decodeList(dict map[string]any) (*List, error) {
	title, ok := dict[keyTitle].(string)
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingField, "folder %s is missing %s", describeDict(dict), keyTitle)
	}
	list := &List{
		ID:    stringField(dict, keyUUID),
		Title: title,
		Extra: extraFields(dict, keyUUID, keyType, keyTitle, keyChildren),
	}
	if raw, ok := dict[keyChildren].([]any); ok {
		list.Children = make([]Node, 0, len(raw))
		for i, elem := range raw {
			child, ok := elem.(map[string]any)
			if !ok {
				return nil, errors.New(errors.ErrCodeUnknownNodeKind, "child %d of folder %q is not a dictionary", i, title)
			}
			node, err := Decode(child)
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "decode child %d of folder %q", i, title)
			}
			list.Children = append(list.Children, node)
		}
	}
	return list, nil
}

func decodeProxy(dict map[string]any) (*Proxy, error) {
	title, ok := dict[keyTitle].(string)
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingField, "proxy %s is missing %s", describeDict(dict), keyTitle)
	}
	return &Proxy{
		ID:    stringField(dict, keyUUID),
		Title: title,
		Extra: extraFields(dict, keyUUID, keyType, keyTitle),
	}, nil
}

// stringField returns the string at key, or "" when absent or mistyped.
// A missing WebBookmarkUUID is tolerated for root-like synthetic nodes.
func stringField(dict map[string]any, key string) string {
	s, _ := dict[key].(string)
	return s
}

// extraFields copies every entry of dict whose key is not recognized.
// Returns nil when there are none, so the bag never alters the key set.
func extraFields(dict map[string]any, recognized ...string) map[string]any {
	var extra map[string]any
	for k, v := range dict {
		known := false
		for _, r := range recognized {
			if k == r {
				known = true
				break
			}
		}
		if known {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

// describeDict names a dictionary for error messages, preferring its UUID.
func describeDict(dict map[string]any) string {
	if id := stringField(dict, keyUUID); id != "" {
		return id
	}
	return "(no uuid)"
}
