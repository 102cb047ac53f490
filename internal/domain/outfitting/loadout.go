package outfitting

import (
	"fmt"

	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

// Loadout aggregate - a named, persistable module configuration: one
// catalog module together with the modifications applied to it.
//
// Invariants:
// - ID and Name must be non-empty
// - Module must be non-nil
type Loadout struct {
	id     string
	name   string
	module *Module
}

// NewLoadout creates a new Loadout with validation.
// Also used by repositories when reconstructing from persisted state.
func NewLoadout(id, name string, module *Module) (*Loadout, error) {
	l := &Loadout{
		id:     id,
		name:   name,
		module: module,
	}

	if err := l.validate(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Loadout) validate() error {
	if l.id == "" {
		return shared.NewInvalidLoadoutDataError("loadout id cannot be empty")
	}

	if l.name == "" {
		return shared.NewInvalidLoadoutDataError("loadout name cannot be empty")
	}

	if l.module == nil {
		return shared.NewInvalidLoadoutDataError("loadout module cannot be nil")
	}

	return nil
}

// Getters

func (l *Loadout) ID() string {
	return l.id
}

func (l *Loadout) Name() string {
	return l.name
}

// Module returns the configured module. Mutations through the returned
// pointer are part of the aggregate and are picked up on the next Save.
func (l *Loadout) Module() *Module {
	return l.module
}

// Rename changes the loadout's display name
func (l *Loadout) Rename(name string) error {
	if name == "" {
		return shared.NewInvalidLoadoutDataError("loadout name cannot be empty")
	}
	l.name = name
	return nil
}

func (l *Loadout) String() string {
	return fmt.Sprintf("Loadout(id=%s, name=%s, module=%s/%s)",
		l.id, l.name, l.module.Grp(), l.module.ID())
}
