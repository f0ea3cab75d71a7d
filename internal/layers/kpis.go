package layers

import (
	"context"
	"fmt"

	"carto_censal/internal/models"
	"carto_censal/internal/store"
)

// Fallback labels for parajes whose left-joined catalog row is missing.
const (
	SinEstado       = "No Revisado"
	SinMunicipio    = "Sin Municipio"
	SinDepartamento = "Sin Departamento"
)

// KPIResult carries the three grouped counts over the paraje layer.
type KPIResult struct {
	TotalPorEstado  []store.Bucket `json:"total_por_estado"`
	PorMunicipio    []store.Bucket `json:"por_municipio"`
	PorDepartamento []store.Bucket `json:"por_departamento"`
}

// KPIs computes the three aggregations under one shared department
// filter. Any sub-query failing aborts the whole call; no partial
// result is returned. The three reads are independent statements, so
// they are only as mutually consistent as the store's default isolation
// against concurrent estado updates.
func (s *Service) KPIs(ctx context.Context, depto string) (*KPIResult, error) {
	f := ResolveDepartamento(depto)
	where := ""
	if !f.IsZero() {
		where = "WHERE " + f.Clause
	}

	parajes := models.Paraje{}.TableName()

	estados, err := s.q.QueryBuckets(ctx, "kpi_estado", fmt.Sprintf(`
		SELECT COALESCE(es.nombre_estado, '%s') AS label, COUNT(*) AS cantidad
		FROM %s p
		LEFT JOIN %s es ON p.id_estado = es.id_estado
		%s
		GROUP BY es.nombre_estado`,
		SinEstado, parajes, models.EstadoSituacion{}.TableName(), where), f.Args...)
	if err != nil {
		return nil, err
	}

	municipios, err := s.q.QueryBuckets(ctx, "kpi_municipio", fmt.Sprintf(`
		SELECT COALESCE(g.nam, '%s') AS label, COUNT(*) AS cantidad
		FROM %s p
		LEFT JOIN %s g ON p.%s = g.%s
		%s
		GROUP BY g.nam`,
		SinMunicipio, parajes, models.GobiernoLocal{}.TableName(), colCMU, colCMU, where), f.Args...)
	if err != nil {
		return nil, err
	}

	departamentos, err := s.q.QueryBuckets(ctx, "kpi_departamento", fmt.Sprintf(`
		SELECT COALESCE(d.nam, '%s') AS label, COUNT(*) AS cantidad
		FROM %s p
		LEFT JOIN %s g ON p.%s = g.%s
		LEFT JOIN %s d ON g.%s = d.in1
		%s
		GROUP BY d.nam`,
		SinDepartamento, parajes, models.GobiernoLocal{}.TableName(), colCMU, colCMU,
		models.Departamento{}.TableName(), colCodDepto, where), f.Args...)
	if err != nil {
		return nil, err
	}

	return &KPIResult{
		TotalPorEstado:  nonNil(estados),
		PorMunicipio:    nonNil(municipios),
		PorDepartamento: nonNil(departamentos),
	}, nil
}

// nonNil keeps empty bucket lists serializing as [] instead of null.
func nonNil(b []store.Bucket) []store.Bucket {
	if b == nil {
		return []store.Bucket{}
	}
	return b
}
