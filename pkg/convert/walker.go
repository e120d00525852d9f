package convert

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// FileEntry identifies one candidate file discovered during traversal.
type FileEntry struct {
	// RelPath is the slash-separated path relative to the codebase root.
	RelPath string
	// AbsPath is the absolute path used for reading.
	AbsPath string
	// Ext is the lowercase extension including the leading dot.
	Ext string
}

// Walker enumerates files beneath a root in a deterministic depth-first
// order, consulting a PathFilter at every directory and file.
type Walker struct {
	filter *PathFilter
	logger *zap.Logger
}

// NewWalker creates a Walker using the given filter. A nil logger disables
// logging.
func NewWalker(filter *PathFilter, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{filter: filter, logger: logger}
}

// Walk returns every file under root that passes the filter. Within each
// directory, entries are visited in name-sorted (case-sensitive, ascending)
// order, with subdirectories entered depth-first as they are encountered, so
// repeated invocations over an unmodified tree yield identical sequences.
//
// Symbolic links are treated as their target type when resolvable and
// skipped silently otherwise. Directories are tracked by resolved real path
// so a symlink cycle is entered at most once.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	visited := make(map[string]struct{})
	if real, err := filepath.EvalSymlinks(absRoot); err == nil {
		visited[real] = struct{}{}
	}

	var entries []FileEntry
	w.walkDir(absRoot, "", visited, &entries)
	return entries, nil
}

// walkDir collects the entries of one directory, recursing into
// subdirectories that pass the filter and have not been seen before.
func (w *Walker) walkDir(dir, rel string, visited map[string]struct{}, out *[]FileEntry) {
	// os.ReadDir returns entries sorted by name, which is exactly the
	// ordering contract here.
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	for _, de := range dirEntries {
		name := de.Name()
		full := filepath.Join(dir, name)
		childRel := name
		if rel != "" {
			childRel = path.Join(rel, name)
		}

		// Stat follows symlinks, so a link behaves as its target type.
		// Dangling links and files removed mid-walk land here and are
		// skipped.
		info, err := os.Stat(full)
		if err != nil {
			w.logger.Debug("Skipping unresolvable entry", zap.String("path", full), zap.Error(err))
			continue
		}

		if info.IsDir() {
			if !w.filter.ShouldDescend(name) {
				w.logger.Debug("Pruning ignored directory", zap.String("dir", full))
				continue
			}
			real, err := filepath.EvalSymlinks(full)
			if err != nil {
				w.logger.Debug("Skipping unresolvable directory", zap.String("dir", full), zap.Error(err))
				continue
			}
			if _, seen := visited[real]; seen {
				w.logger.Warn("Skipping directory already visited through a link",
					zap.String("dir", full),
					zap.String("target", real))
				continue
			}
			visited[real] = struct{}{}
			w.walkDir(full, childRel, visited, out)
			continue
		}

		if !w.filter.ShouldInclude(name) {
			continue
		}
		*out = append(*out, FileEntry{
			RelPath: childRel,
			AbsPath: full,
			Ext:     extensionOf(name),
		})
	}
}
