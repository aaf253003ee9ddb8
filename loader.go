package ctrlstyle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// LoadConfig selects the token source files to load.
type LoadConfig struct {
	// Sources are doublestar glob patterns ("tokens/**/*.yaml").
	Sources []string
	// Exclude holds .gitignore-style patterns matched against each found path.
	Exclude []string
	// BaseDir is joined to relative patterns. Empty means the working directory.
	BaseDir string
}

// LoadStats counts the files a load touched.
type LoadStats struct {
	FilesDiscovered int
	FilesLoaded     int
	FilesSkipped    int
}

// LoadResult is the merged output of Load.
type LoadResult struct {
	Document *Document
	Table    *Table
	Files    []string
	// Warnings lists tokens overridden by a later file.
	Warnings []string
	Stats    LoadStats
}

// Load decodes every matching source file, merges them in match order and
// expands the result. Later files win when two files set the same token.
//
// Load does not check completeness; pass the table to NewComposer or Audit.
func Load(cfg LoadConfig) (*LoadResult, error) {
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no token sources given")
	}

	files, stats, err := expandSources(cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no token files match %s", strings.Join(cfg.Sources, ", "))
	}

	result := &LoadResult{Files: files, Stats: stats}
	merged := NewDocument("")
	for _, file := range files {
		doc, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		for _, w := range merged.Merge(doc) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s overrides %s", file, w))
		}
		result.Stats.FilesLoaded++
	}
	merged.Name = strings.Join(files, ",")

	table, err := merged.Table()
	if err != nil {
		return nil, fmt.Errorf("expand tokens: %w", err)
	}
	result.Document = merged
	result.Table = table
	return result, nil
}

// LoadFile decodes one token file, picking the decoder by extension.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f, path)
	case ".css":
		return DecodeCSS(f, path)
	}
	return nil, fmt.Errorf("unsupported token file type %q", path)
}

// expandSources expands globs into a deduplicated file list, in pattern order.
func expandSources(cfg LoadConfig) ([]string, LoadStats, error) {
	var stats LoadStats
	var excluder *ignore.GitIgnore
	if len(cfg.Exclude) > 0 {
		excluder = ignore.CompileIgnoreLines(cfg.Exclude...)
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range cfg.Sources {
		full := pattern
		if cfg.BaseDir != "" && !filepath.IsAbs(pattern) {
			full = filepath.Join(cfg.BaseDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if excluder != nil && excluder.MatchesPath(relativeTo(cfg.BaseDir, match)) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}
	return files, stats, nil
}

// relativeTo makes path relative to base so exclude patterns see project paths.
func relativeTo(base, path string) string {
	if base == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
