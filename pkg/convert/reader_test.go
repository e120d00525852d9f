package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, dir, name string, data []byte) FileEntry {
	t.Helper()
	full := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(full, data, 0644))
	return FileEntry{RelPath: name, AbsPath: full, Ext: extensionOf(name)}
}

func TestRead_PlainText(t *testing.T) {
	dir := t.TempDir()
	entry := writeEntry(t, dir, "main.py", []byte("x = 1\nprint(x)\n"))

	rec := NewFileReader(nil).Read(entry)
	assert.False(t, rec.Skipped)
	assert.Equal(t, "x = 1\nprint(x)\n", rec.Content)
}

func TestRead_EmptyFileIsText(t *testing.T) {
	dir := t.TempDir()
	entry := writeEntry(t, dir, "empty.txt", nil)

	rec := NewFileReader(nil).Read(entry)
	assert.False(t, rec.Skipped)
	assert.Equal(t, "", rec.Content)
}

func TestRead_InvalidUTF8Dropped(t *testing.T) {
	dir := t.TempDir()
	entry := writeEntry(t, dir, "latin1.txt", []byte{'c', 'a', 'f', 0xe9, '\n'})

	rec := NewFileReader(nil).Read(entry)
	require.False(t, rec.Skipped, "invalid byte sequences must not skip the file")
	assert.Equal(t, "caf\n", rec.Content)
}

func TestRead_MultibyteTextIncluded(t *testing.T) {
	dir := t.TempDir()
	entry := writeEntry(t, dir, "notes.txt", []byte("こんにちは世界\nコード変換\n"))

	rec := NewFileReader(nil).Read(entry)
	require.False(t, rec.Skipped)
	assert.Equal(t, "こんにちは世界\nコード変換\n", rec.Content)
}

func TestRead_NullBytesSkippedAsBinary(t *testing.T) {
	dir := t.TempDir()
	entry := writeEntry(t, dir, "image.txt", []byte("PNG\x00\x01\x02 pretending to be text"))

	rec := NewFileReader(nil).Read(entry)
	assert.True(t, rec.Skipped)
	assert.Equal(t, SkipBinary, rec.SkipReason)
	assert.Empty(t, rec.Content)
}

func TestRead_ControlHeavyContentSkippedAsBinary(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0x01 // control characters, no null bytes
	}
	entry := writeEntry(t, dir, "junk.txt", data)

	rec := NewFileReader(nil).Read(entry)
	assert.True(t, rec.Skipped)
	assert.Equal(t, SkipBinary, rec.SkipReason)
}

func TestRead_MissingFileSkippedWithReason(t *testing.T) {
	entry := FileEntry{
		RelPath: "gone.py",
		AbsPath: filepath.Join(t.TempDir(), "gone.py"),
		Ext:     ".py",
	}

	rec := NewFileReader(nil).Read(entry)
	assert.True(t, rec.Skipped)
	assert.True(t, strings.HasPrefix(rec.SkipReason, SkipReadError))
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		binary bool
	}{
		{"empty", nil, false},
		{"ascii", []byte("hello world\n"), false},
		{"null byte", []byte{'a', 0, 'b'}, true},
		{"null byte past sniff window ignored", []byte(strings.Repeat("a", 520) + "\x00"), false},
		{"utf8 multibyte", []byte("日本語だけのファイル"), false},
		{"tabs and newlines", []byte("a\tb\r\nc"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.binary, isBinary(tt.data))
		})
	}
}
