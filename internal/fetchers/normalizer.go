package fetchers

import (
	"fmt"
	"time"

	"windcast/internal/models"
	"windcast/internal/spots"
)

// localTimeLayout is the provider's timestamp format after the trailing
// timezone abbreviation suffix has been stripped.
const localTimeLayout = "2006-01-02 15:04:05"

// tzSuffixLen is the length of the timezone abbreviation suffix on
// model_time_local values.
const tzSuffixLen = 5

// weekdayNames is Monday-first, matching the provider's week convention.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Normalizer converts raw provider payloads into canonical forecast series.
type Normalizer struct {
	registry *spots.Registry
}

// NewNormalizer creates a normalizer backed by the given spot registry.
func NewNormalizer(registry *spots.Registry) *Normalizer {
	return &Normalizer{registry: registry}
}

// Normalize converts a provider payload into a Series of canonical forecast
// points. Input order is preserved; the provider emits records in
// chronological order and the normalizer does not re-sort.
func (n *Normalizer) Normalize(payload *models.ModelDataResponse) (models.Series, error) {
	if payload == nil {
		return nil, fmt.Errorf("nil payload: %w", ErrMalformedPayload)
	}

	location, err := n.registry.LocationName(payload.SpotID)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	if payload.ModelData == nil {
		return nil, fmt.Errorf("payload for spot %d has no model_data: %w", payload.SpotID, ErrMalformedPayload)
	}

	series := make(models.Series, 0, len(payload.ModelData))
	for i, point := range payload.ModelData {
		ts, err := parseLocalTime(point.ModelTimeLocal)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		series = append(series, models.ForecastPoint{
			Location:     location,
			Timestamp:    ts,
			Weekday:      WeekdayName(ts),
			HourLabel:    HourLabel(ts),
			WindSpeedMph: point.WindSpeed,
			WindGustMph:  point.WindGust,
		})
	}

	return series, nil
}

// parseLocalTime strips the timezone abbreviation suffix and parses the
// remaining naive local timestamp.
func parseLocalTime(s string) (time.Time, error) {
	if len(s) <= tzSuffixLen {
		return time.Time{}, fmt.Errorf("timestamp %q too short: %w", s, ErrMalformedPayload)
	}

	ts, err := time.Parse(localTimeLayout, s[:len(s)-tzSuffixLen])
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %v: %w", s, err, ErrMalformedPayload)
	}

	return ts, nil
}

// WeekdayName returns the Monday-first weekday name for a timestamp.
func WeekdayName(t time.Time) string {
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// HourLabel renders a timestamp as a 12-hour clock label with no leading
// zero: "9AM", "12AM", "12PM".
func HourLabel(t time.Time) string {
	return t.Format("3PM")
}
