package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

// GormLoadoutRepository implements outfitting.LoadoutRepository using GORM.
// Loading a loadout rebuilds its module from the catalog template and
// re-applies the persisted modifications, so the database only carries
// the module identity and the mods map.
type GormLoadoutRepository struct {
	db      *gorm.DB
	catalog outfitting.Catalog
}

// NewGormLoadoutRepository creates a new GORM loadout repository
func NewGormLoadoutRepository(db *gorm.DB, catalog outfitting.Catalog) *GormLoadoutRepository {
	return &GormLoadoutRepository{db: db, catalog: catalog}
}

// Save persists a loadout (upsert)
func (r *GormLoadoutRepository) Save(ctx context.Context, loadout *outfitting.Loadout) error {
	model, err := r.loadoutToModel(loadout)
	if err != nil {
		return fmt.Errorf("failed to convert loadout to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save loadout: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a loadout by id
func (r *GormLoadoutRepository) FindByID(ctx context.Context, id string) (*outfitting.Loadout, error) {
	var model LoadoutModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewLoadoutNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find loadout: %w", result.Error)
	}

	return r.modelToLoadout(ctx, &model)
}

// List retrieves all loadouts ordered by creation time
func (r *GormLoadoutRepository) List(ctx context.Context) ([]*outfitting.Loadout, error) {
	var models []LoadoutModel
	result := r.db.WithContext(ctx).Order("created_at").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list loadouts: %w", result.Error)
	}

	loadouts := make([]*outfitting.Loadout, 0, len(models))
	for i := range models {
		loadout, err := r.modelToLoadout(ctx, &models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert loadout %s: %w", models[i].ID, err)
		}
		loadouts = append(loadouts, loadout)
	}

	return loadouts, nil
}

// Delete removes a loadout by id
func (r *GormLoadoutRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&LoadoutModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete loadout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewLoadoutNotFoundError(id)
	}
	return nil
}

// modelToLoadout converts database model to domain aggregate
func (r *GormLoadoutRepository) modelToLoadout(ctx context.Context, model *LoadoutModel) (*outfitting.Loadout, error) {
	module, err := r.catalog.FindModule(ctx, model.ModuleGrp, model.ModuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild module %s/%s: %w", model.ModuleGrp, model.ModuleID, err)
	}

	if model.Mods != "" {
		var stored map[string]int
		if err := json.Unmarshal([]byte(model.Mods), &stored); err != nil {
			return nil, fmt.Errorf("failed to parse mods for loadout %s: %w", model.ID, err)
		}

		mods := make(map[outfitting.Attribute]int, len(stored))
		for key, scaled := range stored {
			mods[outfitting.Attribute(key)] = scaled
		}
		module.SetScaledMods(mods)
	}

	return outfitting.NewLoadout(model.ID, model.Name, module)
}

// loadoutToModel converts domain aggregate to database model
func (r *GormLoadoutRepository) loadoutToModel(loadout *outfitting.Loadout) (*LoadoutModel, error) {
	module := loadout.Module()

	var modsJSON string
	if module.HasModifications() {
		stored := make(map[string]int)
		for attr, scaled := range module.ScaledMods() {
			stored[string(attr)] = scaled
		}

		bytes, err := json.Marshal(stored)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal mods: %w", err)
		}
		modsJSON = string(bytes)
	}

	return &LoadoutModel{
		ID:        loadout.ID(),
		Name:      loadout.Name(),
		ModuleGrp: module.Grp(),
		ModuleID:  module.ID(),
		Mods:      modsJSON,
	}, nil
}
