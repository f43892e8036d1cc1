package catalog

import (
	"context"
	"embed"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

//go:embed data/*.json
var embedded embed.FS

// Format is the encoding of one catalog document
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// Source supplies the raw document for one catalog kind
type Source interface {
	Read(ctx context.Context, kind Kind) ([]byte, Format, error)
}

// EmbeddedSource serves the catalogs compiled into the binary
type EmbeddedSource struct{}

// Read implements Source
func (EmbeddedSource) Read(_ context.Context, kind Kind) ([]byte, Format, error) {
	data, err := embedded.ReadFile("data/" + string(kind) + ".json")
	if err != nil {
		return nil, FormatJSON, errors.WrapWithCode(err, errors.CodeNotFound,
			"embedded catalog missing").WithMeta("kind", string(kind))
	}
	return data, FormatJSON, nil
}

// DirSource reads <Dir>/<kind>.json, then <kind>.yaml, then <kind>.yml
type DirSource struct {
	Dir string
}

// Read implements Source
func (s DirSource) Read(ctx context.Context, kind Kind) ([]byte, Format, error) {
	candidates := []struct {
		ext    string
		format Format
	}{
		{".json", FormatJSON},
		{".yaml", FormatYAML},
		{".yml", FormatYAML},
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, FormatJSON, errors.WrapWithCode(err, errors.CodeCanceled, "catalog read canceled")
		}
		path := filepath.Join(s.Dir, string(kind)+c.ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, c.format, nil
		}
		if !os.IsNotExist(err) {
			return nil, c.format, errors.Wrapf(err, "failed to read %s", path)
		}
	}

	return nil, FormatJSON, errors.NotFoundf("no catalog file for %s in %s", kind, s.Dir).
		WithMeta("kind", string(kind))
}

// MemorySource serves JSON documents held in memory, keyed by kind
type MemorySource map[Kind][]byte

// Read implements Source
func (s MemorySource) Read(_ context.Context, kind Kind) ([]byte, Format, error) {
	data, ok := s[kind]
	if !ok {
		return nil, FormatJSON, errors.NotFoundf("no %s document", kind)
	}
	return data, FormatJSON, nil
}
