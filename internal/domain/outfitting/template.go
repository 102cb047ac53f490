package outfitting

import "github.com/robsonmobile/coriolis/internal/domain/shared"

// Template is the static catalog definition of a module type.
// Recognized stat keys live in Attributes; any other catalog fields
// (name, rating, class and the like) are preserved verbatim in Extra.
//
// Templates are shared between every module built from them, so callers
// must treat them as read-only after catalog loading.
type Template struct {
	Grp        string
	ID         string
	Attributes map[Attribute]float64
	Extra      map[string]string
}

// NewTemplate creates an empty template for the given group and id
func NewTemplate(grp, id string) (*Template, error) {
	if grp == "" {
		return nil, shared.NewInvalidTemplateError("template grp cannot be empty")
	}
	if id == "" {
		return nil, shared.NewInvalidTemplateError("template id cannot be empty")
	}

	return &Template{
		Grp:        grp,
		ID:         id,
		Attributes: make(map[Attribute]float64),
		Extra:      make(map[string]string),
	}, nil
}

// SetAttribute records a base stat value on the template
func (t *Template) SetAttribute(name Attribute, value float64) {
	t.Attributes[name] = value
}

// SetExtra records a non-stat catalog field on the template
func (t *Template) SetExtra(key, value string) {
	t.Extra[key] = value
}

// Name returns the template's display name, if the catalog supplied one
func (t *Template) Name() string {
	return t.Extra["name"]
}
