package convert

import "strings"

// PathFilter decides which directories are descended into and which files are
// included, based on exact directory names and file extensions. It carries no
// state beyond its two sets and is safe for repeated use.
type PathFilter struct {
	ignoreDirs map[string]struct{}
	extensions map[string]struct{}
}

// NewPathFilter builds a filter from a list of directory names to prune and a
// list of extensions to include.
func NewPathFilter(ignoreDirs, extensions []string) *PathFilter {
	f := &PathFilter{
		ignoreDirs: make(map[string]struct{}, len(ignoreDirs)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, name := range ignoreDirs {
		f.ignoreDirs[name] = struct{}{}
	}
	for _, ext := range extensions {
		f.extensions[strings.ToLower(ext)] = struct{}{}
	}
	return f
}

// ShouldDescend reports whether a directory should be traversed. Matching is
// exact and case-sensitive, so pruning "bin" leaves "Bin" alone.
func (f *PathFilter) ShouldDescend(dirName string) bool {
	_, ignored := f.ignoreDirs[dirName]
	return !ignored
}

// ShouldInclude reports whether a file is eligible for the document. Files
// without an extension never match.
func (f *PathFilter) ShouldInclude(fileName string) bool {
	ext := extensionOf(fileName)
	if ext == "" {
		return false
	}
	_, ok := f.extensions[ext]
	return ok
}

// extensionOf returns the lowercased extension including the leading dot, or
// "" when the file has none. Dotfiles such as ".bashrc" and names ending in a
// bare dot count as extension-less.
func extensionOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx:])
}
