// Package catalog provides the JSON-file-backed module catalog adapter.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

// catalogFile matches the on-disk layout: a single object with a flat
// JSON object per module. Stat keys sit beside identity fields, e.g.
//
//	{"modules": [
//	  {"grp": "sg", "id": "3A", "name": "Shield Generator",
//	   "class": 3, "rating": "A", "mass": 10, "power": 2.52, ...}
//	]}
type catalogFile struct {
	Modules []map[string]any `json:"modules"`
}

// JSONCatalog is an in-memory module catalog loaded from a JSON file.
// It implements outfitting.Catalog. Loading happens once; lookups are
// read-only afterwards, so the catalog is safe for concurrent use.
type JSONCatalog struct {
	templates map[string]*outfitting.Template
	order     []*outfitting.Template
}

// Load reads and parses a catalog file.
// Recognized numeric keys become template stats; every other field is
// preserved as an extra string. Duplicate grp/id pairs are rejected.
func Load(path string) (*JSONCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c := &JSONCatalog{
		templates: make(map[string]*outfitting.Template, len(file.Modules)),
		order:     make([]*outfitting.Template, 0, len(file.Modules)),
	}

	for i, raw := range file.Modules {
		tmpl, err := templateFromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog entry at index %d: %w", i, err)
		}

		key := templateKey(tmpl.Grp, tmpl.ID)
		if _, exists := c.templates[key]; exists {
			return nil, fmt.Errorf("duplicate catalog entry: %s/%s", tmpl.Grp, tmpl.ID)
		}

		c.templates[key] = tmpl
		c.order = append(c.order, tmpl)
	}

	return c, nil
}

// FindModule returns a fresh Module built from the template for grp/id
func (c *JSONCatalog) FindModule(ctx context.Context, grp, id string) (*outfitting.Module, error) {
	tmpl, ok := c.templates[templateKey(grp, id)]
	if !ok {
		return nil, shared.NewModuleNotFoundError(grp, id)
	}
	return outfitting.NewFromTemplate(tmpl)
}

// List returns the templates in a group, or all templates when grp is
// empty, in file order
func (c *JSONCatalog) List(ctx context.Context, grp string) ([]*outfitting.Template, error) {
	if grp == "" {
		return append([]*outfitting.Template(nil), c.order...), nil
	}

	templates := make([]*outfitting.Template, 0)
	for _, tmpl := range c.order {
		if tmpl.Grp == grp {
			templates = append(templates, tmpl)
		}
	}
	return templates, nil
}

// Len returns the number of catalog entries
func (c *JSONCatalog) Len() int {
	return len(c.order)
}

func templateKey(grp, id string) string {
	return grp + "/" + id
}

func templateFromRaw(raw map[string]any) (*outfitting.Template, error) {
	grp, _ := raw["grp"].(string)
	id, _ := raw["id"].(string)

	tmpl, err := outfitting.NewTemplate(grp, id)
	if err != nil {
		return nil, err
	}

	for key, value := range raw {
		if key == "grp" || key == "id" {
			continue
		}

		switch v := value.(type) {
		case float64:
			if attr, ok := outfitting.ParseAttribute(key); ok {
				tmpl.SetAttribute(attr, v)
			} else {
				tmpl.SetExtra(key, strconv.FormatFloat(v, 'f', -1, 64))
			}
		case string:
			tmpl.SetExtra(key, v)
		case bool:
			tmpl.SetExtra(key, strconv.FormatBool(v))
		default:
			// Nested objects and nulls carry no stat data; skip them
		}
	}

	return tmpl, nil
}
