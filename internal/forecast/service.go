package forecast

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"windcast/internal/fetchers"
	"windcast/internal/models"
	"windcast/internal/spots"
	"windcast/internal/store"
)

// Service runs the fetch-extract-normalize-trim-merge cycle and answers
// forecast queries from the accumulated store.
type Service struct {
	fetcher    *fetchers.WindFetcher
	normalizer *fetchers.Normalizer
	registry   *spots.Registry
	store      *store.SeriesStore
	logger     *zap.Logger
}

// NewService wires a forecast service from its collaborators.
func NewService(fetcher *fetchers.WindFetcher, registry *spots.Registry, seriesStore *store.SeriesStore, logger *zap.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		normalizer: fetchers.NewNormalizer(registry),
		registry:   registry,
		store:      seriesStore,
		logger:     logger,
	}
}

// Refresh runs one full fetch cycle for a location. The store is only
// mutated after every stage succeeds; any failure aborts the cycle with the
// store untouched. Returns the trimmed per-fetch series.
func (s *Service) Refresh(ctx context.Context, location string) (models.Series, error) {
	spotID, err := s.registry.SpotID(location)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetcher.FetchModelData(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %q: %w", location, err)
	}

	payload, err := fetchers.ExtractPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %q: %w", location, err)
	}

	series, err := s.normalizer.Normalize(payload)
	if err != nil {
		return nil, fmt.Errorf("normalization failed for %q: %w", location, err)
	}

	trimmed := fetchers.TrimDayWrap(series)
	s.store.Merge(trimmed)

	s.logger.Info("Forecast refreshed",
		zap.String("location", trimmed.Location()),
		zap.Int("records", len(trimmed)),
		zap.Int("trimmed", len(series)-len(trimmed)))

	return trimmed, nil
}

// RefreshAll runs a cycle for every location. Each cycle is independent:
// a failing location aborts only its own merge. Every location is attempted;
// the first error encountered is returned.
func (s *Service) RefreshAll(ctx context.Context, locations []string) error {
	var firstErr error
	for _, location := range locations {
		if _, err := s.Refresh(ctx, location); err != nil {
			s.logger.Error("Refresh failed", zap.String("location", location), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Forecast returns the accumulated series for a location. The name is
// registry-normalized, so lookups are as forgiving as Refresh.
func (s *Service) Forecast(location string) (models.Series, error) {
	spotID, err := s.registry.SpotID(location)
	if err != nil {
		return nil, err
	}

	canonical, err := s.registry.LocationName(spotID)
	if err != nil {
		return nil, err
	}

	return s.store.Records(canonical)
}

// Locations returns every location the registry knows about.
func (s *Service) Locations() []string {
	return s.registry.Locations()
}

// StoreCounts reports accumulated record counts per location.
func (s *Service) StoreCounts() map[string]int {
	return s.store.Counts()
}
