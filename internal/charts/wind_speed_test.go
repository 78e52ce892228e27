package charts

import (
	"os"
	"strings"
	"testing"
	"time"

	"windcast/internal/models"
)

func sampleSeries(hours int) models.Series {
	weekdays := [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	series := make(models.Series, 0, hours)
	for i := 0; i < hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		series = append(series, models.ForecastPoint{
			Location:     "Palo Alto",
			Timestamp:    ts,
			Weekday:      weekdays[(int(ts.Weekday())+6)%7],
			HourLabel:    ts.Format("3PM"),
			WindSpeedMph: float64(5 + i%15),
			WindGustMph:  float64(8 + i%15),
		})
	}
	return series
}

func TestGenerateWindSpeedChart(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	filename, err := cg.GenerateWindSpeedChart("Palo Alto", sampleSeries(48))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(filename, "wind_speed_palo_alto.png") {
		t.Errorf("unexpected chart filename: %s", filename)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestGenerateWindSpeedChartTooFewRecords(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	if _, err := cg.GenerateWindSpeedChart("Palo Alto", sampleSeries(1)); err == nil {
		t.Error("expected error for single-record series")
	}
}

func TestLocationSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Palo Alto", "palo_alto"},
		{"Anita Rock-Crissy Field", "anita_rock_crissy_field"},
		{"3Rd Ave Channel", "3rd_ave_channel"},
	}

	for _, tt := range tests {
		if got := locationSlug(tt.input); got != tt.want {
			t.Errorf("locationSlug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
