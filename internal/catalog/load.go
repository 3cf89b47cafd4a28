package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"showcase/internal/constants"
)

// Load reads and validates a catalog from a YAML source file.
// It fails fast: any malformed record or duplicate id aborts the load
// and no partial catalog is returned.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog source %q: %w", path, err)
	}
	return Parse(data)
}

// LoadReader reads and validates a catalog from an open stream.
func LoadReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog source: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates catalog YAML. Unknown fields (including
// unknown link kinds) are rejected rather than silently dropped.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing catalog source: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Catalog) error {
	seen := make(map[string]bool, len(c.Projects))
	for i := range c.Projects {
		p := &c.Projects[i]
		if p.ID == "" {
			return &MalformedRecordError{ID: p.ID, Index: i, Field: "id", Reason: "missing"}
		}
		if p.Title == "" {
			return &MalformedRecordError{ID: p.ID, Index: i, Field: "title", Reason: "missing"}
		}
		if len(p.Categories) == 0 {
			return &MalformedRecordError{ID: p.ID, Index: i, Field: "categories", Reason: "must not be empty"}
		}
		for _, cat := range p.Categories {
			if cat == "" {
				return &MalformedRecordError{ID: p.ID, Index: i, Field: "categories", Reason: "empty category tag"}
			}
		}
		if p.ScreenshotLayout != "" {
			switch p.ScreenshotLayout {
			case constants.LayoutHorizontal, constants.LayoutGrid, constants.LayoutVertical:
			default:
				return &MalformedRecordError{
					ID: p.ID, Index: i, Field: "screenshotLayout",
					Reason: fmt.Sprintf("unknown layout %q", p.ScreenshotLayout),
				}
			}
		}
		if p.ScreenshotWidth < 0 {
			return &MalformedRecordError{ID: p.ID, Index: i, Field: "screenshotWidth", Reason: "must not be negative"}
		}
		if seen[p.ID] {
			return &DuplicateIDError{ID: p.ID, Index: i}
		}
		seen[p.ID] = true
	}
	return nil
}
