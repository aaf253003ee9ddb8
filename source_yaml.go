package ctrlstyle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// DecodeYAML decodes a YAML token document. source names the input in errors.
func DecodeYAML(r io.Reader, source string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewParseError(source, 0, "empty document", err)
		}
		return nil, NewParseError(source, yamlErrorLine(err), "", err)
	}
	if err := doc.canonicalize(); err != nil {
		return nil, NewParseError(source, 0, "", err)
	}
	return &doc, nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// yamlErrorLine extracts the first line number yaml.v3 reports, if any.
func yamlErrorLine(err error) int {
	var typeErr *yaml.TypeError
	msg := err.Error()
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return line
	}
	return 0
}
