package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the wind forecast service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// WeatherFlow model configuration
	ModelURL      string `env:"MODEL_URL,default=https://api.weatherflow.com/wxengine/rest/model/getModelDataBySpot"`
	WFToken       string `env:"WF_TOKEN,required"`
	ModelID       int    `env:"MODEL_ID,default=211"`
	ForecastDays  int    `env:"FORECAST_DAYS,default=6"`
	IntervalHours int    `env:"INTERVAL_HOURS,default=1"`

	// Unit preferences sent to the model endpoint
	UnitsWind     string `env:"UNITS_WIND,default=mph"`
	UnitsTemp     string `env:"UNITS_TEMP,default=f"`
	UnitsDistance string `env:"UNITS_DISTANCE,default=mi"`
	UnitsPrecip   string `env:"UNITS_PRECIP,default=in"`

	// Locations to refresh, separated by semicolons
	SpotLocations string `env:"SPOT_LOCATIONS,default=Palo Alto;Coyote Point;3rd Ave Channel;Anita Rock-Crissy Field"`

	// Polling configuration
	PollInterval time.Duration `env:"POLL_INTERVAL,default=1h"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=30s"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local storage configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// Locations returns the configured spot locations as a slice.
func (c *Config) Locations() []string {
	var locations []string
	for _, loc := range strings.Split(c.SpotLocations, ";") {
		loc = strings.TrimSpace(loc)
		if loc != "" {
			locations = append(locations, loc)
		}
	}
	return locations
}
