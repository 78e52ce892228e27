package forecast

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"windcast/internal/fetchers"
	"windcast/internal/spots"
	"windcast/internal/store"
)

// jsonpResponse builds a JSONP payload with hourly records starting at the
// given local time.
func jsonpResponse(spotID int, start time.Time, hours int) string {
	body := fmt.Sprintf(`{"spot_id":%d,"model_id":211,"model_data":[`, spotID)
	for i := 0; i < hours; i++ {
		if i > 0 {
			body += ","
		}
		ts := start.Add(time.Duration(i) * time.Hour)
		body += fmt.Sprintf(`{"model_time_local":"%s-0800","wind_speed":%d}`,
			ts.Format("2006-01-02 15:04:05"), 5+i%10)
	}
	body += "]}"
	return "jQuery123(" + body + ");"
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *store.SeriesStore, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := fetchers.FetcherConfig{
		ModelURL:      srv.URL,
		Token:         "test",
		ModelID:       211,
		ForecastDays:  6,
		IntervalHours: 1,
		UnitsWind:     "mph",
		Timeout:       5 * time.Second,
	}

	seriesStore := store.NewSeriesStore()
	svc := NewService(
		fetchers.NewWindFetcher(cfg, zap.NewNop()),
		spots.NewRegistry(),
		seriesStore,
		zap.NewNop(),
	)
	return svc, seriesStore, srv
}

func TestRefreshFullCycle(t *testing.T) {
	// Six full days starting Monday plus 3 wrap-around hours of the next
	// Monday; the trimmer should drop the wrap-around records before merge.
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc, seriesStore, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonpResponse(425, start, 7*24+3)))
	})

	series, err := svc.Refresh(context.Background(), "palo alto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7*24 {
		t.Errorf("expected %d trimmed records, got %d", 7*24, len(series))
	}

	records, err := seriesStore.Records("Palo Alto")
	if err != nil {
		t.Fatalf("store lookup failed: %v", err)
	}
	if len(records) != 7*24 {
		t.Errorf("expected %d stored records, got %d", 7*24, len(records))
	}
}

func TestRefreshUnknownLocationLeavesStoreUntouched(t *testing.T) {
	svc, seriesStore, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("fetch should not happen for unknown location")
	})

	_, err := svc.Refresh(context.Background(), "Atlantis")
	if !errors.Is(err, spots.ErrUnknownLocation) {
		t.Errorf("expected ErrUnknownLocation, got %v", err)
	}
	if len(seriesStore.Locations()) != 0 {
		t.Error("store mutated by failed cycle")
	}
}

func TestRefreshMalformedPayloadLeavesStoreUntouched(t *testing.T) {
	svc, seriesStore, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jQuery123(no json here);"))
	})

	_, err := svc.Refresh(context.Background(), "Palo Alto")
	if !errors.Is(err, fetchers.ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
	if len(seriesStore.Locations()) != 0 {
		t.Error("store mutated by failed cycle")
	}
}

func TestRefreshUnknownSpotInPayload(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc, seriesStore, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonpResponse(77777, start, 4)))
	})

	_, err := svc.Refresh(context.Background(), "Palo Alto")
	if !errors.Is(err, spots.ErrUnknownLocation) {
		t.Errorf("expected ErrUnknownLocation for unresolvable spot_id, got %v", err)
	}
	if len(seriesStore.Locations()) != 0 {
		t.Error("store mutated by failed cycle")
	}
}

func TestRepeatedRefreshIsIdempotent(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc, seriesStore, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonpResponse(408, start, 48)))
	})

	if _, err := svc.Refresh(context.Background(), "Coyote Point"); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), "Coyote Point"); err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}

	records, err := seriesStore.Records("Coyote Point")
	if err != nil {
		t.Fatalf("store lookup failed: %v", err)
	}
	if len(records) != 48 {
		t.Errorf("expected 48 records after repeated refresh, got %d", len(records))
	}
}

func TestForecastNormalizesLookup(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonpResponse(425, start, 6)))
	})

	if _, err := svc.Refresh(context.Background(), "Palo Alto"); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	series, err := svc.Forecast("PALO ALTO")
	if err != nil {
		t.Fatalf("forecast lookup failed: %v", err)
	}
	if len(series) != 6 {
		t.Errorf("expected 6 records, got %d", len(series))
	}

	if _, err := svc.Forecast("Anita Rock-Crissy Field"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for never-fetched location, got %v", err)
	}
}
