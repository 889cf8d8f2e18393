package dataset

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// Shapes loads the region boundary feature collection. Region code and name
// live in the "code" and "nom" properties of each feature.
func (l *Loader) Shapes() (*geojson.FeatureCollection, error) {
	raw, err := os.ReadFile(l.cfg.Shapes)
	if err != nil {
		return nil, fmt.Errorf("read shapes: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode shapes %s: %w", l.cfg.Shapes, err)
	}
	return fc, nil
}
