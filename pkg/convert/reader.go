package convert

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// sniffLen is how many leading bytes the binary heuristic inspects.
const sniffLen = 512

// Skip reasons recorded on a FileRecord when a file is excluded from the
// document.
const (
	SkipBinary    = "binary file"
	SkipReadError = "read error"
)

// FileRecord pairs a FileEntry with its decoded content, or a skip marker
// when the file could not be included.
type FileRecord struct {
	FileEntry
	Content    string
	Skipped    bool
	SkipReason string
}

// FileReader loads file contents tolerantly: undecodable byte sequences are
// dropped, and binary or unreadable files become skip markers rather than
// failures.
type FileReader struct {
	logger *zap.Logger
}

// NewFileReader creates a FileReader. A nil logger disables logging.
func NewFileReader(logger *zap.Logger) *FileReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileReader{logger: logger}
}

// Read returns the record for one discovered file. It never fails the
// conversion: any per-file problem is reported through the skip marker, which
// also covers files removed between enumeration and read.
func (r *FileReader) Read(entry FileEntry) FileRecord {
	data, err := os.ReadFile(entry.AbsPath)
	if err != nil {
		r.logger.Warn("Failed to read file", zap.String("path", entry.AbsPath), zap.Error(err))
		return FileRecord{
			FileEntry:  entry,
			Skipped:    true,
			SkipReason: fmt.Sprintf("%s: %v", SkipReadError, err),
		}
	}

	if isBinary(data) {
		r.logger.Debug("Skipping binary file", zap.String("path", entry.AbsPath))
		return FileRecord{FileEntry: entry, Skipped: true, SkipReason: SkipBinary}
	}

	return FileRecord{FileEntry: entry, Content: decodeTolerant(data)}
}

// isBinary sniffs the leading bytes: a null byte or a high share of
// non-printable characters marks the file as binary. Empty files are text.
func isBinary(data []byte) bool {
	sample := data
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0) != -1 {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable reports whether a byte can appear in text. Bytes above 0x7F are
// accepted as candidate multi-byte sequences; the decode step deals with the
// invalid ones.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}

// decodeTolerant interprets data as UTF-8, dropping invalid byte sequences
// instead of failing.
func decodeTolerant(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return string(bytes.ToValidUTF8(data, nil))
}
