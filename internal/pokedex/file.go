package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var _ RosterSource = FileSource{}

// FileSource reads the roster from a local JSON or YAML document.
type FileSource struct {
	Path string
}

// FetchRoster reads and decodes the file. YAML is chosen by extension.
func (f FileSource) FetchRoster(ctx context.Context) ([]Creature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var roster []Creature
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
	}
	return roster, nil
}

// NewSource picks the roster source: a non-empty file path wins over the URL.
func NewSource(rawURL, file string) (RosterSource, error) {
	if path := strings.TrimSpace(file); path != "" {
		return FileSource{Path: path}, nil
	}
	client, err := NewClient(rawURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}
