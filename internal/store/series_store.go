package store

import (
	"errors"
	"sort"
	"sync"

	"windcast/internal/models"
)

// ErrNotFound is returned when no series has been accumulated for a location.
var ErrNotFound = errors.New("no forecast data for location")

// SeriesStore accumulates forecast series across polls. Records are unique
// per (location, timestamp); merging a record at an existing key replaces
// the stored one (last write wins). Within a location, records stay in
// ascending timestamp order after every merge.
type SeriesStore struct {
	mu   sync.RWMutex
	data map[string]models.Series
}

// NewSeriesStore creates an empty store.
func NewSeriesStore() *SeriesStore {
	return &SeriesStore{
		data: make(map[string]models.Series),
	}
}

// Merge folds a freshly fetched series into the store. Merging the same
// series twice is a no-op beyond the first insertion.
func (s *SeriesStore) Merge(series models.Series) {
	if len(series) == 0 {
		return
	}

	location := series.Location()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.data[location]

	index := make(map[int64]int, len(existing))
	for i, p := range existing {
		index[p.Timestamp.Unix()] = i
	}

	merged := make(models.Series, len(existing))
	copy(merged, existing)

	for _, p := range series {
		if i, ok := index[p.Timestamp.Unix()]; ok {
			merged[i] = p
			continue
		}
		index[p.Timestamp.Unix()] = len(merged)
		merged = append(merged, p)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})

	s.data[location] = merged
}

// Records returns a copy of the accumulated series for a location, ascending
// by timestamp.
func (s *SeriesStore) Records(location string) (models.Series, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.data[location]
	if !ok {
		return nil, ErrNotFound
	}

	out := make(models.Series, len(series))
	copy(out, series)
	return out, nil
}

// Locations returns the locations with accumulated data, sorted.
func (s *SeriesStore) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counts returns the number of accumulated records per location.
func (s *SeriesStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.data))
	for name, series := range s.data {
		counts[name] = len(series)
	}
	return counts
}
