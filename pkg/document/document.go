// Package document provides the output sink for generated codebase documents.
//
// The converter describes document structure through the Builder interface;
// implementations own all formatting and persistence concerns.
package document

// Builder assembles a document from appended elements and persists it with a
// single Save call. Elements appear in the output in the order they were
// appended.
type Builder interface {
	// AddHeading appends a heading. Level 0 is the document title.
	AddHeading(text string, level int)

	// AddParagraph appends a plain text paragraph.
	AddParagraph(text string)

	// AddListItem appends one bulleted list entry. Consecutive calls form a
	// single list.
	AddListItem(text string)

	// AddCodeBlock appends a monospace block preserving content verbatim.
	// lang tags the block for syntax-aware renderers and may be empty.
	AddCodeBlock(content, lang string)

	// Save writes the document to path. A failed save must not leave a
	// partial file at path.
	Save(path string) error
}
