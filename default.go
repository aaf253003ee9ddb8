package ctrlstyle

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed tokens/elevate.yaml
var elevateYAML []byte

var (
	defaultOnce     sync.Once
	defaultTable    *Table
	defaultComposer *Composer
	defaultErr      error
)

// DefaultDocument decodes the embedded ELEVATE token document. Each call
// returns a fresh copy that the caller may modify.
func DefaultDocument() (*Document, error) {
	return DecodeYAML(bytes.NewReader(elevateYAML), "tokens/elevate.yaml")
}

// DefaultTokens returns the raw embedded token document.
func DefaultTokens() []byte {
	return append([]byte(nil), elevateYAML...)
}

func loadDefault() {
	defaultOnce.Do(func() {
		doc, err := DefaultDocument()
		if err != nil {
			defaultErr = err
			return
		}
		defaultTable, defaultErr = doc.Table()
		if defaultErr != nil {
			return
		}
		defaultComposer, defaultErr = NewComposer(DefaultConfig(), defaultTable)
	})
}

// DefaultTable returns the table built from the embedded tokens.
func DefaultTable() (*Table, error) {
	loadDefault()
	return defaultTable, defaultErr
}

// Default returns a composer over the embedded tokens with DefaultConfig.
// It panics if the embedded tokens are invalid, which the package tests rule out.
func Default() *Composer {
	loadDefault()
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultComposer
}
