package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robsonmobile/coriolis/internal/adapters/catalog"
	"github.com/robsonmobile/coriolis/internal/adapters/persistence"
	app "github.com/robsonmobile/coriolis/internal/application/outfitting"
	"github.com/robsonmobile/coriolis/internal/infrastructure/config"
	"github.com/robsonmobile/coriolis/internal/infrastructure/database"
)

// newCatalog loads the module catalog from flags/config
func newCatalog() (*catalog.JSONCatalog, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	path := cfg.Catalog.Path
	if catalogPath != "" {
		path = catalogPath
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load module catalog: %w", err)
	}
	return cat, nil
}

// newService wires the full outfitting service: catalog, database and
// repository. The returned cleanup closes the database connection.
func newService() (*app.Service, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Catalog.Path
	if catalogPath != "" {
		path = catalogPath
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load module catalog: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := persistence.NewGormLoadoutRepository(db, cat)
	svc := app.NewService(cat, repo)

	cleanup := func() {
		database.Close(db)
	}

	return svc, cleanup, nil
}

// parseModFlag parses a --mod flag of the form "attr=value"
func parseModFlag(flag string) (string, float64, error) {
	parts := strings.SplitN(flag, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid --mod %q: expected attr=value", flag)
	}

	value, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --mod value %q: %w", parts[1], err)
	}

	return parts[0], value, nil
}

// formatStat renders a stat value without trailing zero noise
func formatStat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
