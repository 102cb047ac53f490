package config

// CatalogConfig holds module catalog configuration
type CatalogConfig struct {
	// Path to the module catalog JSON file
	Path string `mapstructure:"path" validate:"required"`
}
