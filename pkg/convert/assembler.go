package convert

import (
	"fmt"
	"path"
	"path/filepath"

	"codedoc/pkg/document"
)

// Assembler turns an ordered list of file records into a document through a
// document.Builder. It performs no filesystem I/O of its own.
type Assembler struct {
	cfg *Config
}

// NewAssembler creates an Assembler for the given configuration.
func NewAssembler(cfg *Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Build emits the title page, the optional table of contents, and one section
// per non-skipped record, preserving traversal order throughout. Skipped
// records leave no trace in the document. An empty record list still yields
// the title page.
func (a *Assembler) Build(b document.Builder, records []FileRecord) {
	included := make([]FileRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Skipped {
			included = append(included, rec)
		}
	}

	b.AddHeading("Codebase: "+rootName(a.cfg.CodebasePath), 0)
	b.AddParagraph(fmt.Sprintf("Total files: %d", len(included)))

	if a.cfg.IncludeTOC && len(included) > 0 {
		b.AddHeading("Table of Contents", 1)
		for _, rec := range included {
			b.AddListItem(rec.RelPath)
		}
	}

	for _, rec := range included {
		b.AddHeading(path.Base(rec.RelPath), 1)
		if a.cfg.IncludeFilePaths {
			b.AddParagraph("Location: " + rec.RelPath)
		}
		b.AddCodeBlock(rec.Content, FenceLanguage(rec.Ext))
	}
}

// rootName derives the document title component from the codebase path.
func rootName(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return filepath.Base(abs)
}
