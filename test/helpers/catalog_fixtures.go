package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robsonmobile/coriolis/internal/adapters/catalog"
)

// FixtureCatalogJSON is a small module catalog covering the stat shapes
// tests care about: plain stats, a zero-base resistance, and extra
// non-stat fields.
const FixtureCatalogJSON = `{
  "modules": [
    {
      "grp": "sg",
      "id": "3A",
      "name": "Shield Generator",
      "class": 3,
      "rating": "A",
      "power": 2.52,
      "mass": 10,
      "integrity": 88,
      "optmass": 165,
      "optmul": 1.1,
      "maxmass": 413,
      "kinres": 0.4,
      "thermres": -0.2,
      "explres": 0.5,
      "regen": 1.87,
      "brokenregen": 1.87
    },
    {
      "grp": "sg",
      "id": "2E",
      "name": "Shield Generator",
      "class": 2,
      "rating": "E",
      "power": 0.9,
      "mass": 2.5,
      "integrity": 35,
      "optmass": 55,
      "optmul": 1.0,
      "maxmass": 138,
      "kinres": 0,
      "thermres": -0.2,
      "explres": 0.5
    },
    {
      "grp": "bl",
      "id": "1E",
      "name": "Beam Laser",
      "class": 1,
      "rating": "E",
      "power": 0.62,
      "mass": 2,
      "integrity": 40,
      "dps": 9.82,
      "eps": 1.94,
      "hps": 3.53,
      "range": 3000
    }
  ]
}`

// WriteTestCatalog writes the fixture catalog to a temp file and
// returns its path
func WriteTestCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "modules.json")
	if err := os.WriteFile(path, []byte(FixtureCatalogJSON), 0644); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}
	return path
}

// NewTestCatalog loads the fixture catalog
func NewTestCatalog(t *testing.T) *catalog.JSONCatalog {
	t.Helper()

	c, err := catalog.Load(WriteTestCatalog(t))
	if err != nil {
		t.Fatalf("failed to load test catalog: %v", err)
	}
	return c
}
