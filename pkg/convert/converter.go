// Package convert implements the traversal-and-assembly core: it walks a
// codebase, reads the files that pass the configured filter, and assembles
// one document summarizing them.
package convert

import (
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	"codedoc/pkg/document"
)

// ProgressFunc is notified once per discovered file, in traversal order,
// before the file is read. index is 1-based. Returning a non-nil error
// aborts the conversion immediately and discards the in-progress document.
type ProgressFunc func(index, total int, name string) error

// Converter wires the walker, reader, and assembler together and persists
// the finished document. The whole run is a single synchronous call.
type Converter struct {
	cfg    *Config
	walker *Walker
	reader *FileReader
	logger *zap.Logger
}

// NewConverter creates a Converter for the given configuration. A nil logger
// disables logging.
func NewConverter(cfg *Config, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	filter := NewPathFilter(cfg.ignoreDirs(), cfg.extensions())
	return &Converter{
		cfg:    cfg,
		walker: NewWalker(filter, logger),
		reader: NewFileReader(logger),
		logger: logger,
	}
}

// Run validates the configuration, walks the codebase, reads every
// discovered file, and saves the assembled document to the configured output
// path. Configuration problems surface as *ConfigError before any I/O; a
// failed save surfaces as *WriteError after all files were processed.
func (c *Converter) Run(builder document.Builder, progress ProgressFunc) error {
	start := time.Now()

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	entries, err := c.walker.Walk(c.cfg.CodebasePath)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", c.cfg.CodebasePath, err)
	}
	c.logger.Info("Scanned codebase",
		zap.String("root", c.cfg.CodebasePath),
		zap.Int("candidateFiles", len(entries)))

	records := make([]FileRecord, 0, len(entries))
	for i, entry := range entries {
		if progress != nil {
			if err := progress(i+1, len(entries), path.Base(entry.RelPath)); err != nil {
				return fmt.Errorf("conversion aborted by progress callback: %w", err)
			}
		}
		records = append(records, c.reader.Read(entry))
	}

	NewAssembler(c.cfg).Build(builder, records)

	if err := builder.Save(c.cfg.OutputPath); err != nil {
		return &WriteError{Path: c.cfg.OutputPath, Err: err}
	}

	included := 0
	for _, rec := range records {
		if !rec.Skipped {
			included++
		}
	}
	c.logger.Info("Document saved",
		zap.String("output", c.cfg.OutputPath),
		zap.Int("includedFiles", included),
		zap.Int("skippedFiles", len(records)-included),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
