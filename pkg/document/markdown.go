package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Markdown builds a Markdown document in memory and saves it atomically.
type Markdown struct {
	buf    strings.Builder
	inList bool
}

// NewMarkdown returns an empty Markdown builder.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// AddHeading appends a heading. Level 0 renders as "#", level 1 as "##", and
// so on, capped at Markdown's six heading levels.
func (m *Markdown) AddHeading(text string, level int) {
	m.endList()
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}
	m.buf.WriteString(strings.Repeat("#", level+1))
	m.buf.WriteByte(' ')
	m.buf.WriteString(text)
	m.buf.WriteString("\n\n")
}

// AddParagraph appends a plain paragraph followed by a blank line.
func (m *Markdown) AddParagraph(text string) {
	m.endList()
	m.buf.WriteString(text)
	m.buf.WriteString("\n\n")
}

// AddListItem appends one bulleted list entry.
func (m *Markdown) AddListItem(text string) {
	m.buf.WriteString("- ")
	m.buf.WriteString(text)
	m.buf.WriteByte('\n')
	m.inList = true
}

// AddCodeBlock appends a fenced code block. The fence is extended past any
// backtick run inside content so the block always closes where intended.
func (m *Markdown) AddCodeBlock(content, lang string) {
	m.endList()
	fence := fenceFor(content)
	m.buf.WriteString(fence)
	m.buf.WriteString(lang)
	m.buf.WriteByte('\n')
	m.buf.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		m.buf.WriteByte('\n')
	}
	m.buf.WriteString(fence)
	m.buf.WriteString("\n\n")
}

// String returns the document rendered so far.
func (m *Markdown) String() string {
	return m.buf.String()
}

// Save writes the document to path via a temporary file in the destination
// directory and an atomic rename, so a failed write leaves no partial output.
func (m *Markdown) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".codedoc-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(m.buf.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush document: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}

// endList terminates an open bulleted list with a blank line so the next
// element starts its own block.
func (m *Markdown) endList() {
	if m.inList {
		m.buf.WriteByte('\n')
		m.inList = false
	}
}

// fenceFor picks a backtick fence longer than any backtick run in content.
func fenceFor(content string) string {
	longest := 0
	run := 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		longest = 2
	}
	return strings.Repeat("`", longest+1)
}
