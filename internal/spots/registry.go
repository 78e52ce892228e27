package spots

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// ErrUnknownLocation is returned when a location name or spot ID has no
// counterpart in the registry.
var ErrUnknownLocation = errors.New("unknown location")

// Registry is the fixed bidirectional mapping between human-readable
// location names and provider spot IDs. It is immutable after construction.
type Registry struct {
	byName map[string]int
	byID   map[int]string
}

// defaultSpots lists the supported iWindsurf spots. Names are stored in
// their canonical title-cased form.
var defaultSpots = map[string]int{
	"3Rd Ave Channel":         1374,
	"Anita Rock-Crissy Field": 411,
	"Palo Alto":               425,
	"Coyote Point":            408,
}

// NewRegistry creates a registry with the built-in spot table.
func NewRegistry() *Registry {
	byName := make(map[string]int, len(defaultSpots))
	byID := make(map[int]string, len(defaultSpots))
	for name, id := range defaultSpots {
		byName[name] = id
		byID[id] = name
	}
	return &Registry{byName: byName, byID: byID}
}

// SpotID resolves a location name to its provider spot ID. The name is
// title-case-normalized before lookup, so "palo alto" matches "Palo Alto".
func (r *Registry) SpotID(name string) (int, error) {
	canonical := TitleCase(name)
	id, ok := r.byName[canonical]
	if !ok {
		return 0, fmt.Errorf("no spot ID for %q: %w", name, ErrUnknownLocation)
	}
	return id, nil
}

// LocationName resolves a provider spot ID to its canonical location name.
func (r *Registry) LocationName(spotID int) (string, error) {
	name, ok := r.byID[spotID]
	if !ok {
		return "", fmt.Errorf("no location for spot ID %d: %w", spotID, ErrUnknownLocation)
	}
	return name, nil
}

// Locations returns all canonical location names, sorted.
func (r *Registry) Locations() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TitleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "3rd ave channel" becomes "3Rd Ave Channel".
// This matches the casing the registry's canonical names were built with.
func TitleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}
