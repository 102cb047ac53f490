package persistence

import (
	"time"
)

// LoadoutModel represents the loadouts table
// Mods are stored as a JSON object of scaled integers (attribute key ->
// round(v * 10000)) so the fixed-point values survive persistence
// without a float round trip.
type LoadoutModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	ModuleGrp string    `gorm:"column:module_grp;not null"`
	ModuleID  string    `gorm:"column:module_id;not null"`
	Mods      string    `gorm:"column:mods;type:text"` // JSON as text
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (LoadoutModel) TableName() string {
	return "loadouts"
}
