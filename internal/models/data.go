package models

import "time"

// ModelDataResponse is the forecast payload embedded in the provider's JSONP
// envelope, as returned by the WeatherFlow getModelDataBySpot endpoint.
type ModelDataResponse struct {
	SpotID     int              `json:"spot_id"`
	ModelID    int              `json:"model_id"`
	ModelName  string           `json:"model_name"`
	ModelRunID int              `json:"model_run_id"`
	Status     ResponseStatus   `json:"status"`
	Units      ResponseUnits    `json:"units"`
	MaxWind    float64          `json:"max_wind"`
	ModelData  []ModelDataPoint `json:"model_data"`
}

// ResponseStatus carries the provider's per-request status block.
type ResponseStatus struct {
	StatusCode int    `json:"status_code"`
	StatusText string `json:"status_message"`
}

// ResponseUnits describes the units the provider rendered values in.
type ResponseUnits struct {
	Wind     string `json:"units_wind"`
	Temp     string `json:"units_temp"`
	Distance string `json:"units_distance"`
	Precip   string `json:"units_precip"`
}

// ModelDataPoint is one forecast interval as emitted by the provider.
// ModelTimeLocal is a naive local timestamp with a trailing 5-character
// timezone abbreviation suffix (e.g. "2024-03-07 09:00:00-08  ").
type ModelDataPoint struct {
	ModelTimeLocal string  `json:"model_time_local"`
	WindSpeed      float64 `json:"wind_speed"`
	WindGust       float64 `json:"wind_gust"`
	WindDir        float64 `json:"wind_dir"`
	TempF          float64 `json:"temp"`
}

// ForecastPoint is a normalized, fully typed forecast interval ready for
// storage and plotting.
type ForecastPoint struct {
	Location     string    `json:"location"`
	Timestamp    time.Time `json:"timestamp"`      // naive local time, second precision
	Weekday      string    `json:"weekday"`        // Monday..Sunday
	HourLabel    string    `json:"hour_label"`     // 12-hour clock, no leading zero: "9AM", "12PM"
	WindSpeedMph float64   `json:"wind_speed_mph"`
	WindGustMph  float64   `json:"wind_gust_mph"`
}

// Series is an ordered sequence of forecast points for a single location,
// ascending by timestamp.
type Series []ForecastPoint

// Location returns the location shared by the series, or "" when empty.
func (s Series) Location() string {
	if len(s) == 0 {
		return ""
	}
	return s[0].Location
}

// Weekdays returns the distinct weekday labels in series order.
func (s Series) Weekdays() []string {
	seen := make(map[string]bool, 7)
	var days []string
	for _, p := range s {
		if !seen[p.Weekday] {
			seen[p.Weekday] = true
			days = append(days, p.Weekday)
		}
	}
	return days
}

// MaxWindSpeed returns the highest wind speed in the series.
func (s Series) MaxWindSpeed() float64 {
	var max float64
	for _, p := range s {
		if p.WindSpeedMph > max {
			max = p.WindSpeedMph
		}
	}
	return max
}
