package layers

import (
	"context"
	"fmt"
	"strings"

	"carto_censal/internal/geo"
	"carto_censal/internal/models"
	"carto_censal/internal/store"
)

// Service runs the layer and KPI queries through an injected Querier.
type Service struct {
	q store.Querier
}

func NewService(q store.Querier) *Service {
	return &Service{q: q}
}

// collectionQuery assembles the single-round-trip FeatureCollection
// query: the store converts geometries with ST_AsGeoJSON, strips the
// geom key from the properties and aggregates the whole document as one
// jsonb value. COALESCE keeps zero matching rows from producing a null
// features array.
func collectionQuery(l Layer, f Filter) (string, []any) {
	sel := fmt.Sprintf("SELECT %s FROM %s", strings.Join(l.Projection, ", "), l.Table)
	var args []any
	if !f.IsZero() {
		sel += " WHERE " + f.Clause
		args = f.Args
	}

	query := fmt.Sprintf(`
		SELECT jsonb_build_object(
			'type', 'FeatureCollection',
			'features', COALESCE(jsonb_agg(feature), '[]'::jsonb)
		)
		FROM (
			SELECT jsonb_build_object(
				'type', 'Feature',
				'geometry', ST_AsGeoJSON(geom)::jsonb,
				'properties', to_jsonb(row) - 'geom'
			) AS feature
			FROM (%s) row
		) features`, sel)
	return query, args
}

// Collection builds the GeoJSON FeatureCollection for a layer. The
// filter is ignored on layers that do not accept it. Zero matching rows
// yield an empty collection, never null.
func (s *Service) Collection(ctx context.Context, l Layer, f Filter) (*geo.FeatureCollection, error) {
	if !l.Filterable {
		f = Filter{}
	}

	query, args := collectionQuery(l, f)
	raw, err := s.q.QueryJSON(ctx, l.ID, query, args...)
	if err != nil {
		return nil, err
	}

	fc, err := geo.ParseCollection(raw)
	if err != nil {
		return nil, &store.QueryError{Context: l.ID, Err: err}
	}
	return fc, nil
}

// Departamentos lists department names ascending. Duplicate names in
// the source table pass through as-is.
func (s *Service) Departamentos(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT nam FROM %s ORDER BY nam", models.Departamento{}.TableName())
	names, err := s.q.QueryNames(ctx, "departamentos", query)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// SetEstado updates the review status of one paraje. Matching zero rows
// is a silent no-op.
func (s *Service) SetEstado(ctx context.Context, id, estado int64) error {
	return s.q.UpdateEstado(ctx, id, estado)
}
