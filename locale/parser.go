package locale

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes raw catalog content into per-language message maps. The
// outer key is a BCP 47 language code, the inner key a failure code, and the
// value a message template with optional %{name} placeholders.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]string, error)
	SupportsExt(ext string) bool
}

// YAMLParser decodes YAML catalogs.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return data, nil
}

func (p *YAMLParser) SupportsExt(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser decodes JSON catalogs.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]map[string]string
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return data, nil
}

func (p *JSONParser) SupportsExt(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
