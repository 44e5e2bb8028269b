package bookmarks

import (
	"io"

	"github.com/safarimarks/safarimarks/pkg/errors"
	"github.com/safarimarks/safarimarks/pkg/plistio"
)

// Document binds a bookmark tree to its backing plist file.
//
// A Document remembers the path it was opened from and the encoding the file
// was stored in, so an unadorned [Document.Save] writes back exactly where
// and how the data was found. Any number of in-memory mutations may happen
// between load and save; there is no change tracking and no detection of
// concurrent external writes, so the last writer wins.
type Document struct {
	root   *Item
	path   string
	format plistio.Format
}

// New creates an in-memory document over a root folder. The document has no
// backing path until [Document.SaveTo] assigns one; Save defaults to the
// binary encoding.
func New(root *List) *Document {
	return &Document{root: &Item{node: root, root: true}}
}

// Open reads and decodes the plist file at path. The file's encoding is
// auto-detected and remembered for Save. The root dictionary must decode to
// a folder.
func Open(path string) (*Document, error) {
	value, format, err := plistio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := fromValue(value)
	if err != nil {
		return nil, err
	}
	doc.path = path
	doc.format = format
	return doc, nil
}

// Load decodes a plist document from r without binding it to a path.
// Save on the result fails with NOT_OPENED until SaveTo is used.
func Load(r io.ReadSeeker) (*Document, error) {
	value, format, err := plistio.Decode(r)
	if err != nil {
		return nil, err
	}
	doc, err := fromValue(value)
	if err != nil {
		return nil, err
	}
	doc.format = format
	return doc, nil
}

func fromValue(value any) (*Document, error) {
	dict, ok := value.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownNodeKind, "document root is not a dictionary")
	}
	node, err := Decode(dict)
	if err != nil {
		return nil, err
	}
	root, ok := node.(*List)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotAFolder, "document root is not a folder")
	}
	return New(root), nil
}

// Root returns the root item. The root is a folder but is never movable.
func (d *Document) Root() *Item { return d.root }

// Path returns the backing file path, or "" for in-memory documents.
func (d *Document) Path() string { return d.path }

// Format returns the encoding Save will write. For documents opened from a
// file this is the encoding the file was found in; otherwise binary.
func (d *Document) Format() plistio.Format { return d.format }

// Resolve finds an item from the root by identifier or title path.
func (d *Document) Resolve(segments ...string) (*Item, error) {
	return d.root.Resolve(segments...)
}

// Save re-encodes the tree and writes it to the path the document was opened
// from, in the format it was opened in. Fails with NOT_OPENED when the
// document has no backing path.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New(errors.ErrCodeNotOpened, "document has no backing file")
	}
	return d.SaveTo(d.path, d.format)
}

// SaveTo writes the tree to path in the given format and makes that pair the
// new default for Save.
func (d *Document) SaveTo(path string, format plistio.Format) error {
	if path == "" {
		return errors.New(errors.ErrCodeNotOpened, "no path given")
	}
	if err := plistio.WriteFile(path, d.root.Node().Plist(), format); err != nil {
		return err
	}
	d.path = path
	d.format = format
	return nil
}

// Encode returns the document's plist bytes in the given format without
// touching the filesystem.
func (d *Document) Encode(format plistio.Format) ([]byte, error) {
	return plistio.Marshal(d.root.Node().Plist(), format)
}
