package locale

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// Source loads message catalogs keyed by language code.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapSource serves catalogs from an in-memory map, which is the natural
// choice for applications that define their messages in code.
type MapSource map[string]map[string]string

func (s MapSource) Load(_ context.Context) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(s))
	for lang, catalog := range s {
		c := make(map[string]string, len(catalog))
		maps.Copy(c, catalog)
		out[lang] = c
	}
	return out, nil
}

// FSSource loads every supported catalog file from one directory of an
// fs.FS, which covers plain directories (os.DirFS), embedded filesystems
// (embed.FS), and test fixtures alike. Catalogs from multiple files merge;
// a language may span files.
type FSSource struct {
	fsys    fs.FS
	root    string
	parsers []Parser
}

// NewFSSource creates a source reading catalog files under root. When no
// parsers are given, YAML and JSON are supported.
func NewFSSource(fsys fs.FS, root string, parsers ...Parser) *FSSource {
	if len(parsers) == 0 {
		parsers = []Parser{NewYAMLParser(), NewJSONParser()}
	}
	return &FSSource{fsys: fsys, root: root, parsers: parsers}
}

func (s *FSSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if s.fsys == nil {
		return nil, errors.New("locale: FSSource has no filesystem")
	}

	entries, err := fs.ReadDir(s.fsys, s.root)
	if err != nil {
		return nil, fmt.Errorf("locale: reading catalog directory %q: %w", s.root, err)
	}

	all := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		parser := s.parserFor(path.Ext(entry.Name()))
		if parser == nil {
			continue
		}

		name := path.Join(s.root, entry.Name())
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("locale: reading catalog %q: %w", name, err)
		}

		catalogs, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("locale: catalog %q: %w", name, err)
		}

		for lang, catalog := range catalogs {
			if all[lang] == nil {
				all[lang] = make(map[string]string, len(catalog))
			}
			maps.Copy(all[lang], catalog)
		}
	}

	return all, nil
}

func (s *FSSource) parserFor(ext string) Parser {
	for _, p := range s.parsers {
		if p.SupportsExt(ext) {
			return p
		}
	}
	return nil
}
