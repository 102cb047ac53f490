package outfitting

import "context"

// Catalog looks up module templates by group and id.
//
// FindModule returns a fresh Module built from the matching template, so
// each caller gets an independent instance with an empty modification
// map. Not-found is reported as *shared.ModuleNotFoundError.
type Catalog interface {
	FindModule(ctx context.Context, grp, id string) (*Module, error)

	// List returns the templates in a group, or every template when
	// grp is empty, in catalog order.
	List(ctx context.Context, grp string) ([]*Template, error)
}

// LoadoutRepository persists loadouts
type LoadoutRepository interface {
	Save(ctx context.Context, loadout *Loadout) error

	// FindByID returns *shared.LoadoutNotFoundError when no loadout
	// exists for the id.
	FindByID(ctx context.Context, id string) (*Loadout, error)

	List(ctx context.Context) ([]*Loadout, error)

	Delete(ctx context.Context, id string) error
}
