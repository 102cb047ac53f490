// Package outfitting provides the application service coordinating the
// module catalog and loadout persistence.
package outfitting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/robsonmobile/coriolis/internal/domain/outfitting"
	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

// Service orchestrates catalog lookups and loadout persistence.
// Input validation lives here: the domain accepts whatever it is given
// (matching the catalog data contract), while user-facing entry points
// reject unknown attributes and out-of-range modification values.
type Service struct {
	catalog  domain.Catalog
	loadouts domain.LoadoutRepository
}

// NewService creates a new outfitting service
func NewService(catalog domain.Catalog, loadouts domain.LoadoutRepository) *Service {
	return &Service{
		catalog:  catalog,
		loadouts: loadouts,
	}
}

// ShowModule returns a fresh, unmodified module for a catalog entry
func (s *Service) ShowModule(ctx context.Context, grp, id string) (*domain.Module, error) {
	return s.catalog.FindModule(ctx, grp, id)
}

// ListTemplates returns catalog templates, optionally filtered by group
func (s *Service) ListTemplates(ctx context.Context, grp string) ([]*domain.Template, error) {
	return s.catalog.List(ctx, grp)
}

// CreateLoadout creates and persists a named loadout for a catalog module
func (s *Service) CreateLoadout(ctx context.Context, name, grp, id string) (*domain.Loadout, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}

	module, err := s.catalog.FindModule(ctx, grp, id)
	if err != nil {
		return nil, err
	}

	loadout, err := domain.NewLoadout(uuid.NewString(), name, module)
	if err != nil {
		return nil, err
	}

	if err := s.loadouts.Save(ctx, loadout); err != nil {
		return nil, fmt.Errorf("failed to persist loadout: %w", err)
	}

	return loadout, nil
}

// GetLoadout retrieves a loadout by id
func (s *Service) GetLoadout(ctx context.Context, id string) (*domain.Loadout, error) {
	return s.loadouts.FindByID(ctx, id)
}

// ListLoadouts retrieves all saved loadouts
func (s *Service) ListLoadouts(ctx context.Context) ([]*domain.Loadout, error) {
	return s.loadouts.List(ctx)
}

// DeleteLoadout removes a loadout by id
func (s *Service) DeleteLoadout(ctx context.Context, id string) error {
	return s.loadouts.Delete(ctx, id)
}

// SetModification applies a percentage modification to a loadout's module
// and persists the result. value is fractional (0.05 = +5%) and must be
// within [-1, 1]; zero removes the modification.
func (s *Service) SetModification(ctx context.Context, loadoutID, attrName string, value float64) (*domain.Loadout, error) {
	attr, err := s.parseAttribute(attrName)
	if err != nil {
		return nil, err
	}

	if value < -1 || value > 1 {
		return nil, shared.NewValidationError("value",
			fmt.Sprintf("modification must be between -1 and 1, got %v", value))
	}

	loadout, err := s.loadouts.FindByID(ctx, loadoutID)
	if err != nil {
		return nil, err
	}

	loadout.Module().SetModValue(attr, value)

	if err := s.loadouts.Save(ctx, loadout); err != nil {
		return nil, fmt.Errorf("failed to persist loadout: %w", err)
	}

	return loadout, nil
}

// ClearModification removes a modification from a loadout's module and
// persists the result. Clearing an absent modification is a no-op.
func (s *Service) ClearModification(ctx context.Context, loadoutID, attrName string) (*domain.Loadout, error) {
	attr, err := s.parseAttribute(attrName)
	if err != nil {
		return nil, err
	}

	loadout, err := s.loadouts.FindByID(ctx, loadoutID)
	if err != nil {
		return nil, err
	}

	loadout.Module().ClearModValue(attr)

	if err := s.loadouts.Save(ctx, loadout); err != nil {
		return nil, fmt.Errorf("failed to persist loadout: %w", err)
	}

	return loadout, nil
}

func (s *Service) parseAttribute(attrName string) (domain.Attribute, error) {
	attr, ok := domain.ParseAttribute(attrName)
	if !ok {
		return "", shared.NewValidationError("attribute",
			fmt.Sprintf("unknown attribute %q", attrName))
	}
	return attr, nil
}
