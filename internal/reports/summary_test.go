package reports

import (
	"strings"
	"testing"
	"time"

	"windcast/internal/models"
)

func sampleSeries() models.Series {
	base := time.Date(2024, 3, 7, 6, 0, 0, 0, time.UTC)
	series := models.Series{}
	speeds := []float64{8, 12, 18, 14}
	for i, s := range speeds {
		ts := base.Add(time.Duration(i) * time.Hour)
		series = append(series, models.ForecastPoint{
			Location:     "Palo Alto",
			Timestamp:    ts,
			Weekday:      "Thursday",
			HourLabel:    ts.Format("3PM"),
			WindSpeedMph: s,
			WindGustMph:  s + 4,
		})
	}
	// A second day with calmer wind.
	friday := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	series = append(series, models.ForecastPoint{
		Location:     "Palo Alto",
		Timestamp:    friday,
		Weekday:      "Friday",
		HourLabel:    "10AM",
		WindSpeedMph: 5,
		WindGustMph:  7,
	})
	return series
}

func TestSummarizeDays(t *testing.T) {
	days := summarizeDays(sampleSeries())

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	thu := days[0]
	if thu.Weekday != "Thursday" {
		t.Errorf("first day = %q, want Thursday", thu.Weekday)
	}
	if thu.Records != 4 {
		t.Errorf("Thursday records = %d, want 4", thu.Records)
	}
	if thu.MaxWind != 18 {
		t.Errorf("Thursday max wind = %v, want 18", thu.MaxWind)
	}
	if thu.MaxGust != 22 {
		t.Errorf("Thursday max gust = %v, want 22", thu.MaxGust)
	}
	if thu.AvgWind != 13 {
		t.Errorf("Thursday avg wind = %v, want 13", thu.AvgWind)
	}
	if thu.PeakHour != "8AM" {
		t.Errorf("Thursday peak hour = %q, want 8AM", thu.PeakHour)
	}

	if days[1].Weekday != "Friday" || days[1].Records != 1 {
		t.Errorf("unexpected second day: %+v", days[1])
	}
}

func TestBuildMarkdownSummary(t *testing.T) {
	generatedAt := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	md := BuildMarkdownSummary("Palo Alto", sampleSeries(), generatedAt)

	for _, want := range []string{
		"# Wind Forecast: Palo Alto",
		"| Thursday | 13.0 | 18.0 | 22.0 | 8AM |",
		"| Friday | 5.0 | 5.0 | 7.0 | 10AM |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBuildMarkdownSummaryEmpty(t *testing.T) {
	md := BuildMarkdownSummary("Palo Alto", nil, time.Now())
	if !strings.Contains(md, "No forecast data available") {
		t.Errorf("empty series summary missing placeholder:\n%s", md)
	}
}
