package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EmbeddedPath is the name of the bundled content file.
const EmbeddedPath = "site.yaml"

//go:embed site.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the content bundled with the binary.
func LoadEmbedded() (*Site, error) {
	return LoadFS(embeddedFS, EmbeddedPath)
}

// LoadFS loads and validates content from a filesystem.
func LoadFS(fsys fs.FS, path string) (*Site, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	return site, nil
}

// LoadFile loads and validates content from a path on disk.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML content and validates it. Unknown keys are rejected so
// typos in the content file fail at startup.
func Parse(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTestimonials
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}
