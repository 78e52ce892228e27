package fetchers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// FetcherConfig bundles the provider query parameters and client settings
// used to build getModelDataBySpot requests.
type FetcherConfig struct {
	ModelURL      string // endpoint, without query string
	Token         string // wf_token query parameter
	ModelID       int
	ForecastDays  int
	IntervalHours int
	UnitsWind     string
	UnitsTemp     string
	UnitsDistance string
	UnitsPrecip   string
	Timeout       time.Duration
}

// WindFetcher fetches raw model forecast payloads from the provider.
type WindFetcher struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	cfg     FetcherConfig
	logger  *zap.Logger
}

// NewWindFetcher creates a fetcher with retries and a circuit breaker around
// the provider endpoint.
func NewWindFetcher(cfg FetcherConfig, logger *zap.Logger) *WindFetcher {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.88 Safari/537.36")
	client.SetHeader("Accept-Language", "en-US,en;q=0.5")

	settings := gobreaker.Settings{
		Name:    "weatherflow",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &WindFetcher{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
		cfg:     cfg,
		logger:  logger,
	}
}

// FetchModelData fetches the raw JSONP-wrapped forecast payload for a spot.
// The caller is responsible for unwrapping and normalizing the text.
func (f *WindFetcher) FetchModelData(ctx context.Context, spotID int) (string, error) {
	url := f.buildURL(spotID)

	body, err := f.breaker.Execute(func() (interface{}, error) {
		resp, err := f.client.R().
			SetContext(ctx).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch model data for spot %d: %w", spotID, err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("model data API returned status %d for spot %d", resp.StatusCode(), spotID)
		}
		return string(resp.Body()), nil
	})
	if err != nil {
		return "", err
	}

	raw := body.(string)
	f.logger.Debug("Fetched model data",
		zap.Int("spot_id", spotID),
		zap.Int("bytes", len(raw)))

	return raw, nil
}

// buildURL constructs the getModelDataBySpot query. The callback parameter
// makes the provider wrap the JSON in jQuery-style padding; the trailing
// underscore parameter is a cache buster.
func (f *WindFetcher) buildURL(spotID int) string {
	now := time.Now().UnixMilli()
	return fmt.Sprintf(
		"%s?callback=jQuery%d&units_wind=%s&units_temp=%s&units_distance=%s&units_precip=%s&spot_id=%d&model_id=%d&days=%d&intervalHours=%d&wf_token=%s&_=%d",
		f.cfg.ModelURL, now,
		f.cfg.UnitsWind, f.cfg.UnitsTemp, f.cfg.UnitsDistance, f.cfg.UnitsPrecip,
		spotID, f.cfg.ModelID, f.cfg.ForecastDays, f.cfg.IntervalHours,
		f.cfg.Token, now)
}
