package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"windcast/internal/charts"
	"windcast/internal/models"
	"windcast/internal/storage"
)

// ReportGenerator assembles the forecast report for a location and
// persists it through the storage client.
type ReportGenerator struct {
	builder *HTMLBuilder
	storage storage.StorageClient
	logger  *zap.Logger
}

// NewReportGenerator creates a report generator
func NewReportGenerator(storageClient storage.StorageClient, logger *zap.Logger) *ReportGenerator {
	return &ReportGenerator{
		builder: NewHTMLBuilder(),
		storage: storageClient,
		logger:  logger,
	}
}

// Generate builds the markdown summary, the wind speed chart and the HTML
// page for one location, stores them, and returns the report folder path.
func (rg *ReportGenerator) Generate(ctx context.Context, location string, series models.Series) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no forecast data for %s", location)
	}

	generatedAt := time.Now().UTC()
	folderPath := storage.ReportFolderPath(generatedAt)

	chartDir, err := os.MkdirTemp("", "windcast-charts-")
	if err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}
	defer os.RemoveAll(chartDir)

	chartGen := charts.NewChartGenerator(chartDir)

	chartPath, err := chartGen.GenerateWindSpeedChart(location, series)
	if err != nil {
		return "", fmt.Errorf("failed to generate wind speed chart: %w", err)
	}

	chartData, err := os.ReadFile(chartPath)
	if err != nil {
		return "", fmt.Errorf("failed to read chart file: %w", err)
	}

	snippet, err := chartGen.WindSpeedSnippet(location, series)
	if err != nil {
		return "", fmt.Errorf("failed to generate chart snippet: %w", err)
	}

	markdown := BuildMarkdownSummary(location, series, generatedAt)

	chartFilename := filepath.Base(chartPath)
	page, err := rg.builder.BuildReportPage(location, markdown, chartFilename, snippet.HTML, generatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to build report page: %w", err)
	}

	if err := rg.storage.StoreFile(ctx, chartData, chartFilename, generatedAt); err != nil {
		return "", fmt.Errorf("failed to store chart: %w", err)
	}
	if err := rg.storage.StoreFile(ctx, []byte(markdown), "report.md", generatedAt); err != nil {
		return "", fmt.Errorf("failed to store markdown: %w", err)
	}
	if err := rg.storage.StoreFile(ctx, []byte(page), "index.html", generatedAt); err != nil {
		return "", fmt.Errorf("failed to store report page: %w", err)
	}

	rg.logger.Info("Report generated",
		zap.String("location", location),
		zap.String("folder", folderPath),
		zap.Int("records", len(series)))

	return folderPath, nil
}
