package convert

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultIgnoreDirs lists the directory names pruned from traversal unless
// the configuration removes the defaults entirely. Matching is exact and
// case-sensitive.
var DefaultIgnoreDirs = []string{
	"__pycache__", "node_modules", ".git", ".venv", "venv",
	"env", "build", "dist", ".idea", ".vscode", "target",
	".gradle", "bin", "obj", "coverage",
}

// DefaultExtensions lists the file extensions eligible for inclusion when the
// configuration does not supply its own set.
var DefaultExtensions = []string{
	".py", ".js", ".jsx", ".ts", ".tsx", ".java", ".cpp", ".c", ".h",
	".cs", ".rb", ".go", ".rs", ".php", ".swift", ".kt", ".scala",
	".html", ".css", ".scss", ".sass", ".less", ".xml", ".json",
	".yaml", ".yml", ".md", ".txt", ".sh", ".bash", ".sql", ".r",
}

// Config holds the options for one conversion run. It is not mutated once a
// Converter starts using it.
type Config struct {
	// CodebasePath is the traversal root. It must exist and be a directory.
	CodebasePath string `yaml:"codebase_path"`

	// OutputPath is the destination for the generated document.
	OutputPath string `yaml:"output_path"`

	// IncludeFilePaths annotates each file section with its relative path.
	IncludeFilePaths bool `yaml:"include_file_paths"`

	// IncludeTOC places a table of contents before the file sections.
	IncludeTOC bool `yaml:"include_toc"`

	// IgnoreDirs names additional directories to prune. The names are merged
	// with DefaultIgnoreDirs.
	IgnoreDirs []string `yaml:"ignore_dirs"`

	// IncludeExtensions replaces DefaultExtensions when non-empty.
	IncludeExtensions []string `yaml:"include_extensions"`
}

// DefaultConfig returns a Config carrying the default flag values. Paths are
// left empty for the caller to fill in.
func DefaultConfig() *Config {
	return &Config{
		IncludeFilePaths: true,
		IncludeTOC:       true,
	}
}

// LoadConfigFile reads overrides from a YAML file on top of the defaults.
// A missing file yields the defaults without error; a malformed file is an
// error.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Booleans go through pointers so an explicit "false" in the file is
	// distinguishable from an absent key.
	var fileCfg struct {
		CodebasePath      string   `yaml:"codebase_path"`
		OutputPath        string   `yaml:"output_path"`
		IncludeFilePaths  *bool    `yaml:"include_file_paths"`
		IncludeTOC        *bool    `yaml:"include_toc"`
		IgnoreDirs        []string `yaml:"ignore_dirs"`
		IncludeExtensions []string `yaml:"include_extensions"`
	}
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.CodebasePath != "" {
		cfg.CodebasePath = fileCfg.CodebasePath
	}
	if fileCfg.OutputPath != "" {
		cfg.OutputPath = fileCfg.OutputPath
	}
	if fileCfg.IncludeFilePaths != nil {
		cfg.IncludeFilePaths = *fileCfg.IncludeFilePaths
	}
	if fileCfg.IncludeTOC != nil {
		cfg.IncludeTOC = *fileCfg.IncludeTOC
	}
	cfg.IgnoreDirs = append(cfg.IgnoreDirs, fileCfg.IgnoreDirs...)
	if len(fileCfg.IncludeExtensions) > 0 {
		cfg.IncludeExtensions = fileCfg.IncludeExtensions
	}

	return cfg, nil
}

// Validate checks the configuration before any traversal starts.
func (c *Config) Validate() error {
	if c.CodebasePath == "" {
		return &ConfigError{Field: "codebase_path", Reason: "path is required"}
	}
	info, err := os.Stat(c.CodebasePath)
	if err != nil {
		return &ConfigError{
			Field:  "codebase_path",
			Reason: fmt.Sprintf("path does not exist: %s", c.CodebasePath),
		}
	}
	if !info.IsDir() {
		return &ConfigError{
			Field:  "codebase_path",
			Reason: fmt.Sprintf("path is not a directory: %s", c.CodebasePath),
		}
	}
	if c.OutputPath == "" {
		return &ConfigError{Field: "output_path", Reason: "path is required"}
	}
	return nil
}

// ignoreDirs returns the effective ignore set: the defaults plus any names
// added by the configuration.
func (c *Config) ignoreDirs() []string {
	merged := make([]string, 0, len(DefaultIgnoreDirs)+len(c.IgnoreDirs))
	merged = append(merged, DefaultIgnoreDirs...)
	merged = append(merged, c.IgnoreDirs...)
	return merged
}

// extensions returns the effective include set: the configured extensions
// when present, otherwise the defaults. Entries are normalized to a leading
// dot and lower case.
func (c *Config) extensions() []string {
	src := DefaultExtensions
	if len(c.IncludeExtensions) > 0 {
		src = c.IncludeExtensions
	}
	exts := make([]string, 0, len(src))
	for _, ext := range src {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}
