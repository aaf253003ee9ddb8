package main

import (
	"fmt"
	"strings"

	"github.com/yacobolo/ctrlstyle"
)

const embeddedSource = "embedded:tokens/elevate.yaml"

// tokenSet is a loaded token table plus where it came from.
type tokenSet struct {
	doc      *ctrlstyle.Document
	table    *ctrlstyle.Table
	files    []string
	warnings []string
}

func (ts *tokenSet) source() string {
	return strings.Join(ts.files, ",")
}

// loadTokens loads the configured token files, or the embedded tokens when
// none are configured.
func loadTokens() (*tokenSet, error) {
	cfg := buildLoadConfig()
	if len(cfg.Sources) == 0 {
		doc, err := ctrlstyle.DefaultDocument()
		if err != nil {
			return nil, err
		}
		table, err := doc.Table()
		if err != nil {
			return nil, err
		}
		log.Debug("using embedded tokens")
		return &tokenSet{doc: doc, table: table, files: []string{embeddedSource}}, nil
	}

	result, err := ctrlstyle.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	log.WithFields(map[string]any{
		"discovered": result.Stats.FilesDiscovered,
		"loaded":     result.Stats.FilesLoaded,
		"skipped":    result.Stats.FilesSkipped,
		"entries":    result.Table.Len(),
	}).Debug("loaded token files")
	for _, w := range result.Warnings {
		log.Debug(w)
	}
	return &tokenSet{doc: result.Document, table: result.Table, files: result.Files, warnings: result.Warnings}, nil
}

// buildComposer loads tokens and constructs a composer over them.
func buildComposer() (*ctrlstyle.Composer, error) {
	ts, err := loadTokens()
	if err != nil {
		return nil, err
	}
	composer, err := ctrlstyle.NewComposer(buildComposerConfig(), ts.table)
	if err != nil {
		return nil, fmt.Errorf("build composer: %w", err)
	}
	return composer, nil
}
