// Package geo holds the GeoJSON document types served by the layer
// endpoints and the sanitization applied to documents assembled by the
// database.
package geo

import (
	"encoding/json"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// FeatureCollection follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one geometry + properties record of a layer.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// Empty returns a valid zero-feature collection. Layer queries matching
// no rows serve this instead of null.
func Empty() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// ParseCollection decodes a jsonb document produced by the store and
// sanitizes it. A nil or empty document (the aggregate was SQL NULL)
// yields an empty collection.
func ParseCollection(raw []byte) (*FeatureCollection, error) {
	fc := Empty()
	if len(raw) == 0 {
		return fc, nil
	}
	if err := json.Unmarshal(raw, fc); err != nil {
		return nil, err
	}
	fc.Sanitize()
	return fc, nil
}

// Sanitize normalizes the collection in place:
//   - Type fields are forced to their GeoJSON values
//   - a nil features slice becomes an empty one
//   - leaked geometry property keys (geom/geometry) are removed
//   - features whose geometry is not valid GeoJSON are dropped
//
// Dropping invalid geometries (rather than failing the whole document)
// keeps one bad row from taking a layer offline.
func (fc *FeatureCollection) Sanitize() {
	fc.Type = "FeatureCollection"
	kept := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if !validGeometry(f.Geometry) {
			continue
		}
		f.Type = "Feature"
		if f.Properties == nil {
			f.Properties = map[string]any{}
		}
		delete(f.Properties, "geom")
		delete(f.Properties, "geometry")
		kept = append(kept, f)
	}
	fc.Features = kept
}

func validGeometry(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	var g geom.T
	return gjson.Unmarshal(raw, &g) == nil
}
