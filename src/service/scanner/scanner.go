package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"codescope/src/config"
	"codescope/src/util"
)

// SourceFile is one file handed to the analysis engine
type SourceFile struct {
	Path        string // relative to the scanned base directory
	Content     string
	ContentHash string // xxhash64 fingerprint of the raw bytes
}

// Scanner collects source files from a base directory
type Scanner struct {
	matcher     *util.PathMatcher
	maxFileSize int64
}

// New creates a scanner from scan configuration
func New(cfg config.ScanConfig) *Scanner {
	maxSize := int64(cfg.MaxFileSizeKB) * 1024
	if maxSize <= 0 {
		maxSize = 1 << 20
	}
	return &Scanner{
		matcher:     util.NewPathMatcher(cfg.IncludePatterns, cfg.ExcludePatterns),
		maxFileSize: maxSize,
	}
}

// Collect walks baseDir and returns the selected files in deterministic
// (lexical walk) order plus the relative paths of files that were matched
// but could not be read. A read failure is logged and skips only that
// file; it never aborts the walk.
func (s *Scanner) Collect(baseDir string) ([]SourceFile, []string, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", baseDir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("scanning %s: not a directory", baseDir)
	}

	var files []SourceFile
	var skipped []string

	err = filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			util.Warn("Skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !s.matcher.Matches(rel) {
			return nil
		}

		if fi, err := d.Info(); err == nil && fi.Size() > s.maxFileSize {
			util.Debug("Skipping %s: %d bytes exceeds size limit", rel, fi.Size())
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			util.Warn("Unreadable file %s: %v", rel, err)
			skipped = append(skipped, rel)
			return nil
		}

		files = append(files, SourceFile{
			Path:        rel,
			Content:     string(data),
			ContentHash: fmt.Sprintf("%016x", xxhash.Sum64(data)),
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking %s: %w", baseDir, err)
	}

	util.Debug("Collected %d files from %s (%d unreadable)", len(files), baseDir, len(skipped))
	return files, skipped, nil
}
