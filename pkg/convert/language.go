package convert

// fenceLanguages maps file extensions to Markdown fence language tags.
var fenceLanguages = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "jsx",
	".ts":    "typescript",
	".tsx":   "tsx",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".h":     "c",
	".cs":    "csharp",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".sass":  "sass",
	".less":  "less",
	".xml":   "xml",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".md":    "markdown",
	".sh":    "bash",
	".bash":  "bash",
	".sql":   "sql",
	".r":     "r",
}

// FenceLanguage returns the fence tag for a lowercase extension, or "" when
// the extension has no known tag.
func FenceLanguage(ext string) string {
	return fenceLanguages[ext]
}
