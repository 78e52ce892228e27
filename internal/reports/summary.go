package reports

import (
	"fmt"
	"strings"
	"time"

	"windcast/internal/models"
)

// daySummary aggregates one forecast day for the markdown report.
type daySummary struct {
	Weekday  string
	Records  int
	MaxWind  float64
	MaxGust  float64
	AvgWind  float64
	PeakHour string
}

// summarizeDays groups the series by weekday in forecast order and
// computes per-day wind statistics.
func summarizeDays(series models.Series) []daySummary {
	var days []daySummary
	index := make(map[string]int)

	for _, p := range series {
		i, ok := index[p.Weekday]
		if !ok {
			i = len(days)
			index[p.Weekday] = i
			days = append(days, daySummary{Weekday: p.Weekday, PeakHour: p.HourLabel})
		}

		d := &days[i]
		d.Records++
		d.AvgWind += p.WindSpeedMph
		if p.WindSpeedMph > d.MaxWind {
			d.MaxWind = p.WindSpeedMph
			d.PeakHour = p.HourLabel
		}
		if p.WindGustMph > d.MaxGust {
			d.MaxGust = p.WindGustMph
		}
	}

	for i := range days {
		days[i].AvgWind /= float64(days[i].Records)
	}

	return days
}

// BuildMarkdownSummary renders the per-day forecast summary as markdown.
func BuildMarkdownSummary(location string, series models.Series, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wind Forecast: %s\n\n", location)
	fmt.Fprintf(&b, "Generated at %s from the iWindsurf Quicklook model.\n\n",
		generatedAt.Format("2006-01-02 15:04 MST"))

	if len(series) == 0 {
		b.WriteString("No forecast data available for this location.\n")
		return b.String()
	}

	b.WriteString("| Day | Avg Wind (mph) | Max Wind (mph) | Max Gust (mph) | Peak Hour |\n")
	b.WriteString("|-----|----------------|----------------|----------------|-----------|\n")

	for _, d := range summarizeDays(series) {
		fmt.Fprintf(&b, "| %s | %.1f | %.1f | %.1f | %s |\n",
			d.Weekday, d.AvgWind, d.MaxWind, d.MaxGust, d.PeakHour)
	}

	return b.String()
}
