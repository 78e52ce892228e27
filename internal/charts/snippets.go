package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"windcast/internal/models"
)

// ChartSnippet is an embeddable chart fragment for the HTML report.
// HTML contains the complete div + init script block produced by go-echarts.
type ChartSnippet struct {
	ID    string
	Title string
	HTML  string
}

// WindSpeedSnippet builds an interactive ECharts line chart for a location's
// wind series, mirroring the static PNG chart.
func (cg *ChartGenerator) WindSpeedSnippet(location string, series models.Series) (ChartSnippet, error) {
	if len(series) == 0 {
		return ChartSnippet{}, fmt.Errorf("empty series for %q", location)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "1000px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Wind Speed @ %s", location),
			Subtitle: "Model forecast, mph",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "mph",
		}),
	)

	xAxis := make([]string, len(series))
	speedData := make([]opts.LineData, len(series))
	gustData := make([]opts.LineData, len(series))
	for i, p := range series {
		xAxis[i] = fmt.Sprintf("%s %s", p.Weekday[:3], p.HourLabel)
		speedData[i] = opts.LineData{Value: p.WindSpeedMph}
		gustData[i] = opts.LineData{Value: p.WindGustMph}
	}

	line.SetXAxis(xAxis).
		AddSeries("Wind Speed", speedData).
		AddSeries("Wind Gust", gustData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to render wind speed snippet: %w", err)
	}

	return ChartSnippet{
		ID:    fmt.Sprintf("chart-wind-speed-%s", locationSlug(location)),
		Title: fmt.Sprintf("Wind Speed @ %s", location),
		HTML:  buf.String(),
	}, nil
}
