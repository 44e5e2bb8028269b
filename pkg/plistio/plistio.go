// Package plistio adapts the howett.net/plist codec to the bookmark store.
//
// Safari persists its bookmarks as an Apple property list, binary on disk but
// occasionally XML when exported or hand-edited. This package narrows the
// general plist codec down to the two encodings the store uses, adds format
// auto-detection on read, and guarantees deterministic output (the underlying
// codec emits dictionary keys in sorted order, so encoding the same value
// twice yields identical bytes).
//
// Values cross this boundary as generic plist data: map[string]any for
// dictionaries, []any for arrays, string, bool, uint64 for integers, float64
// for reals, time.Time for dates, and []byte for data blobs.
package plistio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"howett.net/plist"
)

// Format identifies a property-list encoding.
type Format int

const (
	// Binary is the bplist00 encoding Safari writes by default.
	Binary Format = iota
	// XML is the human-readable encoding.
	XML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	default:
		return "binary"
	}
}

// libFormat maps a Format onto the underlying codec's format constant.
func libFormat(f Format) int {
	if f == XML {
		return plist.XMLFormat
	}
	return plist.BinaryFormat
}

// Decode reads a property list from r, auto-detecting the encoding.
// It returns the generic plist value and the format it was stored in.
func Decode(r io.ReadSeeker) (any, Format, error) {
	dec := plist.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Binary, fmt.Errorf("decode plist: %w", err)
	}
	f := Binary
	if dec.Format == plist.XMLFormat {
		f = XML
	}
	return v, f, nil
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v any, f Format) error {
	enc := plist.NewEncoderForFormat(w, libFormat(f))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode plist: %w", err)
	}
	return nil
}

// Marshal returns the encoded bytes of v in the given format.
func Marshal(v any, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data, auto-detecting the encoding.
func Unmarshal(data []byte) (any, Format, error) {
	return Decode(bytes.NewReader(data))
}

// ReadFile reads and decodes the property list at path.
func ReadFile(path string) (any, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Binary, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteFile encodes v and writes it to path with 0644 permissions.
func WriteFile(path string, v any, f Format) error {
	data, err := Marshal(v, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
