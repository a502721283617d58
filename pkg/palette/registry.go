package palette

import (
	"fmt"
	"sort"
)

// DefaultMaxPathCount is the path count that maps to full brightness.
const DefaultMaxPathCount = 16

var defaultColors = map[string]string{
	"mpquic":       "#E69F00",
	"mcmpquic":     "#56B4E9",
	"mcmpquic-aff": "#009E73",
	"mcmpquic-rfs": "#CC79A7",
}

// Registry maps an implementation label to its base hex colour.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	colors map[string]string
}

// NewRegistry copies colors into a new Registry. Every value must be a
// valid hex colour.
func NewRegistry(colors map[string]string) (*Registry, error) {
	r := &Registry{colors: make(map[string]string, len(colors))}
	for label, hex := range colors {
		if _, err := HexToRGB(hex); err != nil {
			return nil, fmt.Errorf("implementation %q: %w", label, err)
		}
		r.colors[label] = hex
	}
	return r, nil
}

// DefaultRegistry returns the registry of the four QUIC implementations.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(defaultColors)
	return r
}

// Merge returns a new Registry holding r's entries overridden by colors.
func (r *Registry) Merge(colors map[string]string) (*Registry, error) {
	merged := make(map[string]string, len(r.colors)+len(colors))
	for label, hex := range r.colors {
		merged[label] = hex
	}
	for label, hex := range colors {
		merged[label] = hex
	}
	return NewRegistry(merged)
}

// ResolveBaseColor returns the hex colour of label, or FallbackColor when
// the label is unknown.
func (r *Registry) ResolveBaseColor(label string) string {
	if hex, ok := r.colors[label]; ok {
		return hex
	}
	return FallbackColor
}

// Labels returns the registered labels in sorted order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.colors))
	for label := range r.colors {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Encode returns the colour of label for a run that used pathCount paths.
// Hue and saturation come from the base colour; the value channel ramps
// linearly from 0 at zero paths to 1 at maxPathCount and keeps growing past it.
func (r *Registry) Encode(label string, pathCount, maxPathCount int) (RGB, error) {
	if maxPathCount <= 0 {
		return RGB{}, fmt.Errorf("%w: max path count must be positive, got %d", ErrFormat, maxPathCount)
	}
	base, err := ParseColor(r.ResolveBaseColor(label))
	if err != nil {
		return RGB{}, err
	}
	hsv := base.Normalize().ToHSV()
	step := 100 / float64(maxPathCount)
	hsv.V = step * float64(pathCount) / 100
	return hsv.ToRGB(), nil
}
