// Package pkg provides the core libraries for Safari bookmark management.
//
// # Overview
//
// Safari persists its bookmarks in a single property-list file. The pkg
// directory splits the work of reading, navigating, and rewriting that file
// into four layers:
//
//  1. [plistio] - Property-list codec (binary and XML, format auto-detection)
//  2. [bookmarks] - Data model, tree navigation, and safe mutation
//  3. [render] - Graphviz visualization of the tree
//  4. [errors] - Structured error codes shared by all layers
//
// # Architecture
//
// The typical data flow:
//
//	Bookmarks.plist
//	         ↓
//	    [plistio] package (decode to generic plist values)
//	         ↓
//	    [bookmarks] package (typed nodes, items, documents)
//	         ↓
//	    mutation via [bookmarks.Item] / output via [render]
//	         ↓
//	    [plistio] package (encode back, same format)
//
// # Quick Start
//
// Open a store, move a bookmark, and save:
//
//	doc, err := bookmarks.Open("Bookmarks.plist")
//	if err != nil {
//	    return err
//	}
//	item, err := doc.Resolve("BookmarksMenu", "Go")
//	if err != nil {
//	    return err
//	}
//	bar, err := doc.Resolve("BookmarksBar")
//	if err != nil {
//	    return err
//	}
//	if err := bar.Append(item); err != nil {
//	    return err
//	}
//	return doc.Save()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/bookmarks/... # Specific package
//
// [plistio]: https://pkg.go.dev/github.com/safarimarks/safarimarks/pkg/plistio
// [bookmarks]: https://pkg.go.dev/github.com/safarimarks/safarimarks/pkg/bookmarks
// [render]: https://pkg.go.dev/github.com/safarimarks/safarimarks/pkg/render
// [errors]: https://pkg.go.dev/github.com/safarimarks/safarimarks/pkg/errors
package pkg
