package fetchers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"windcast/internal/models"
)

// ErrMalformedPayload is returned when the raw response text does not
// contain a parseable forecast payload.
var ErrMalformedPayload = errors.New("malformed payload")

// ExtractPayload locates the JSON object embedded in a JSONP-padded response
// (everything from the first '{' to the last '}') and parses it. The scan is
// deliberately narrow: the provider emits exactly one object inside the
// callback padding and nothing else is accepted.
func ExtractPayload(raw string) (*models.ModelDataResponse, error) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return nil, fmt.Errorf("no opening brace in response: %w", ErrMalformedPayload)
	}

	end := strings.LastIndex(raw, "}")
	if end < 0 {
		return nil, fmt.Errorf("no closing brace in response: %w", ErrMalformedPayload)
	}

	if end < start {
		return nil, fmt.Errorf("closing brace before opening brace: %w", ErrMalformedPayload)
	}

	var resp models.ModelDataResponse
	if err := json.Unmarshal([]byte(raw[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse embedded JSON: %v: %w", err, ErrMalformedPayload)
	}

	return &resp, nil
}
