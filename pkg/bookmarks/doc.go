// Package bookmarks implements the typed model of Safari's Bookmarks.plist
// and the navigation and mutation engine on top of it.
//
// The package has three layers:
//
//   - Node: a discriminated three-variant model ([Leaf], [List], [Proxy]) of
//     one plist dictionary, keyed on the WebBookmarkType field. Every field
//     the model does not understand is carried in an open Extra bag so that
//     a decode-encode cycle is lossless; the store belongs to Safari, which
//     may depend on fields this tool has never heard of.
//   - Item: a parent-aware wrapper over a Node providing lookup by UUID or
//     title path and structurally safe mutation (append, remove, move,
//     empty). Items are ephemeral views; the parent relation lives only in
//     the wrapper layer, never in the nodes themselves.
//   - Document: a session binding a root Item to a file on disk, with
//     format-preserving load and save through [plistio].
//
// # Example
//
//	doc, err := bookmarks.Open(path)
//	if err != nil {
//	    return err
//	}
//	bar, err := doc.Root().Resolve("BookmarksBar")
//	if err != nil {
//	    return err
//	}
//	if _, err := bar.AddBookmark("https://go.dev", "Go", ""); err != nil {
//	    return err
//	}
//	return doc.Save()
package bookmarks
