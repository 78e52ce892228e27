package config

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*Config)
	}{
		{
			name: "valid config with required fields",
			envVars: map[string]string{
				"WF_TOKEN": "test-token",
			},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.WFToken != "test-token" {
					t.Errorf("Expected WFToken to be 'test-token', got '%s'", cfg.WFToken)
				}
				if cfg.Port != "8982" {
					t.Errorf("Expected default Port to be '8982', got '%s'", cfg.Port)
				}
				if cfg.ModelID != 211 {
					t.Errorf("Expected default ModelID to be 211, got %d", cfg.ModelID)
				}
				if cfg.ForecastDays != 6 {
					t.Errorf("Expected default ForecastDays to be 6, got %d", cfg.ForecastDays)
				}
				if cfg.IntervalHours != 1 {
					t.Errorf("Expected default IntervalHours to be 1, got %d", cfg.IntervalHours)
				}
				if cfg.UnitsWind != "mph" || cfg.UnitsTemp != "f" || cfg.UnitsDistance != "mi" || cfg.UnitsPrecip != "in" {
					t.Errorf("Unexpected default units: %s %s %s %s", cfg.UnitsWind, cfg.UnitsTemp, cfg.UnitsDistance, cfg.UnitsPrecip)
				}
				if cfg.PollInterval != time.Hour {
					t.Errorf("Expected default PollInterval to be 1h, got %v", cfg.PollInterval)
				}
				if cfg.FetchTimeout != 30*time.Second {
					t.Errorf("Expected default FetchTimeout to be 30s, got %v", cfg.FetchTimeout)
				}
				if cfg.LocalReportsDir != "./reports" {
					t.Errorf("Expected default LocalReportsDir to be './reports', got '%s'", cfg.LocalReportsDir)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default Environment to be 'development', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"WF_TOKEN":       "custom-token",
				"PORT":           "9000",
				"MODEL_ID":       "100",
				"FORECAST_DAYS":  "3",
				"SPOT_LOCATIONS": "Palo Alto;Coyote Point",
				"POLL_INTERVAL":  "30m",
				"GCS_BUCKET":     "test-bucket",
				"ENVIRONMENT":    "production",
			},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port to be '9000', got '%s'", cfg.Port)
				}
				if cfg.ModelID != 100 {
					t.Errorf("Expected ModelID to be 100, got %d", cfg.ModelID)
				}
				if cfg.ForecastDays != 3 {
					t.Errorf("Expected ForecastDays to be 3, got %d", cfg.ForecastDays)
				}
				if cfg.PollInterval != 30*time.Minute {
					t.Errorf("Expected PollInterval to be 30m, got %v", cfg.PollInterval)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if cfg.Environment != "production" {
					t.Errorf("Expected Environment to be 'production', got '%s'", cfg.Environment)
				}
				want := []string{"Palo Alto", "Coyote Point"}
				if got := cfg.Locations(); !reflect.DeepEqual(got, want) {
					t.Errorf("Expected Locations to be %v, got %v", want, got)
				}
			},
		},
		{
			name:        "missing required token",
			envVars:     map[string]string{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load(context.Background())

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(cfg)
			}
		})
	}
}

func TestLocationsTrimsAndSkipsEmpty(t *testing.T) {
	cfg := &Config{SpotLocations: " Palo Alto ; ;Coyote Point;"}
	want := []string{"Palo Alto", "Coyote Point"}
	if got := cfg.Locations(); !reflect.DeepEqual(got, want) {
		t.Errorf("Locations() = %v, want %v", got, want)
	}
}
