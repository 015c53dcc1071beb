package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the earthquake visualization service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Data source URLs
	CatalogURL       string `env:"CATALOG_URL,default=http://www.geophysics.geol.uoa.gr/stations/maps/seismicity.txt?type=cat"`
	AdvisoriesRSSURL string `env:"ADVISORIES_RSS_URL"`

	// Catalog pipeline configuration
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT,default=30s"`
	CacheTTL         time.Duration `env:"CACHE_TTL,default=5m"`
	CatalogMaxEvents int           `env:"CATALOG_MAX_EVENTS,default=500"`
	AdvisoriesLimit  int           `env:"ADVISORIES_LIMIT,default=5"`

	// Map rendering defaults (Greece)
	MapCenterLat float64 `env:"MAP_CENTER_LAT,default=38.2"`
	MapCenterLon float64 `env:"MAP_CENTER_LON,default=23.7"`
	MapZoom      int     `env:"MAP_ZOOM,default=7"`

	// Local chart image output
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}
	if cfg.CatalogMaxEvents < 0 {
		return nil, fmt.Errorf("CATALOG_MAX_EVENTS must not be negative, got %d", cfg.CatalogMaxEvents)
	}
	return &cfg, nil
}
