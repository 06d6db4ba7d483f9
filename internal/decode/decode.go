// Package decode reads structured documents into plain Go values for
// rendering.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for input formats that cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format represents an input format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var formats = []Format{JSON, YAML, TOML}

var extensions = map[string]Format{
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".toml": TOML,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Detect picks the format of a file from its extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q of %s", ErrUnsupportedFormat, ext, path)
}

// Decode reads every document in r. JSON and YAML streams may hold several
// documents; a TOML file is always one.
func Decode(r io.Reader, f Format) ([]any, error) {
	switch f {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case TOML:
		return decodeTOML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func decodeJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode json document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, v)
	}
}

func decodeYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, v)
	}
}

func decodeTOML(r io.Reader) ([]any, error) {
	var v map[string]any
	if err := toml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return []any{v}, nil
}
