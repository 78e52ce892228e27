package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"windcast/internal/models"
)

// GenerateWindSpeedChart renders the accumulated wind series for a location
// as a PNG line chart: records on the X axis in series order, red dashed
// separators at midnight, weekday names above each day's span, and hour
// labels every six records.
func (cg *ChartGenerator) GenerateWindSpeedChart(location string, series models.Series) (string, error) {
	if len(series) < 2 {
		return "", fmt.Errorf("need at least 2 records to chart %q, have %d", location, len(series))
	}

	filename := filepath.Join(cg.outputDir, fmt.Sprintf("wind_speed_%s.png", locationSlug(location)))

	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	for i, p := range series {
		xValues[i] = float64(i)
		yValues[i] = p.WindSpeedMph
	}

	maxSpeed := series.MaxWindSpeed()

	// Day separators at every midnight record.
	var gridLines []chart.GridLine
	for i, p := range series {
		if p.HourLabel == "12AM" {
			gridLines = append(gridLines, chart.GridLine{Value: float64(i)})
		}
	}

	// Hour labels every 6 records.
	var ticks []chart.Tick
	for i := 0; i < len(series); i += 6 {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: series[i].HourLabel})
	}
	if last := len(series) - 1; len(ticks) > 0 && ticks[len(ticks)-1].Value != float64(last) {
		ticks = append(ticks, chart.Tick{Value: float64(last), Label: series[last].HourLabel})
	}

	// Weekday names centered over each day's span, above the curve.
	annotations := cg.weekdayAnnotations(series, maxSpeed+1.5)

	mainSeries := chart.ContinuousSeries{
		Name: "Wind Speed [mph]",
		Style: chart.Style{
			StrokeColor: drawing.Color{R: 31, G: 119, B: 180, A: 255},
			StrokeWidth: 2,
			DotColor:    drawing.Color{R: 31, G: 119, B: 180, A: 255},
			DotWidth:    3,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Wind Speed @ %s [mph]", location),
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   60,
				Right:  30,
				Bottom: 60,
			},
		},
		Width:  1000,
		Height: 400,
		XAxis: chart.XAxis{
			Style: chart.Style{
				FontSize:            8,
				TextRotationDegrees: 45,
			},
			Ticks:     ticks,
			GridLines: gridLines,
			GridMajorStyle: chart.Style{
				StrokeColor:     drawing.Color{R: 220, G: 53, B: 69, A: 255},
				StrokeWidth:     2,
				StrokeDashArray: []float64{5.0, 5.0},
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(len(series) - 1),
			},
		},
		YAxis: chart.YAxis{
			Name: "mph",
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxSpeed + 4,
			},
		},
		Series: []chart.Series{
			mainSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
				Style: chart.Style{
					FontSize:    10,
					FontColor:   drawing.Color{R: 52, G: 58, B: 64, A: 255},
					StrokeColor: drawing.ColorTransparent,
					FillColor:   drawing.ColorTransparent,
				},
			},
		},
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create wind speed chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render wind speed chart: %w", err)
	}

	return filename, nil
}

// weekdayAnnotations returns one label per weekday present, centered over
// that weekday's index span.
func (cg *ChartGenerator) weekdayAnnotations(series models.Series, y float64) []chart.Value2 {
	firstIdx := make(map[string]int)
	lastIdx := make(map[string]int)
	for i, p := range series {
		if _, ok := firstIdx[p.Weekday]; !ok {
			firstIdx[p.Weekday] = i
		}
		lastIdx[p.Weekday] = i
	}

	var annotations []chart.Value2
	for _, weekday := range series.Weekdays() {
		mid := float64(firstIdx[weekday]+lastIdx[weekday]) / 2
		annotations = append(annotations, chart.Value2{
			XValue: mid,
			YValue: y,
			Label:  weekday,
		})
	}
	return annotations
}
