// Package export loads social-graph export documents and produces canonical
// identifier sets.
//
// # Overview
//
// Export producers version their on-disk schema freely, so the same logical
// list of accounts has shipped in several shapes over time:
//
//   - A top-level JSON array of entries
//   - An object holding the entries under a well-known key such as
//     "relationships_following" or "followers"
//   - An object holding the entries under some other, unknown key
//
// The loader classifies the document with [Detect], which returns a tagged
// [Source] instead of branching on types ad hoc. Each entry is then resolved
// to at most one raw username by an ordered list of extractors (first match
// wins):
//
//  1. string_list_data[0].value
//  2. username
//  3. value
//
// Raw usernames are canonicalized by [Normalize]: surrounding whitespace is
// trimmed, one leading "@" is stripped, and the result is lowercased. Both
// documents of a run must pass through this same normalization or the set
// comparison between them is meaningless.
//
// # Tolerance Policy
//
// Entries that are not JSON objects, or that no extractor resolves, are
// skipped silently; they are counted on [Document.Skipped] for diagnostics
// but never raise errors. Only unreadable files and malformed JSON are
// errors. An empty identifier set is a valid outcome.
//
// # Usage
//
//	doc, err := export.Load("following.json")
//	if err != nil {
//	    return err
//	}
//	for _, id := range doc.IDs.Sorted() {
//	    fmt.Println(id)
//	}
package export
