package layers

import (
	"github.com/lib/pq"

	"carto_censal/internal/models"
)

// Layer describes one queryable vector layer: the relation it reads,
// the columns projected into feature properties and whether it accepts
// the department filter. The catalog is fixed at startup and read-only.
type Layer struct {
	ID     string
	Nombre string
	// Table is the physical relation, optionally aliased.
	Table string
	// Projection lists the selected column expressions. Exactly one of
	// them must expose the geometry under the name "geom"; everything
	// else becomes a feature property.
	Projection []string
	// Filterable marks the layer as accepting the depto predicate.
	Filterable bool
}

// Mixed-case shapefile columns need quoting in every query that touches
// them; QuoteIdentifier keeps the quoting in one place.
var (
	colCMU      = pq.QuoteIdentifier("CMU")
	colCodDepto = pq.QuoteIdentifier("COD_DEPTO")
)

// Catalog is the static layer catalog served by /api/capas, in display
// order.
var Catalog = []Layer{
	{
		ID:     models.Paraje{}.TableName(),
		Nombre: "Parajes Censales",
		Table:  models.Paraje{}.TableName() + " p",
		Projection: []string{
			"p.id",
			"p.nam AS nombre",
			"p.id_estado",
			"p." + colCMU,
			"p." + colCodDepto,
			"p.geom",
		},
		Filterable: true,
	},
	{
		ID:         models.Localidad{}.TableName(),
		Nombre:     "Localidades",
		Table:      models.Localidad{}.TableName(),
		Projection: []string{"id", "nam AS nombre", "geom"},
	},
	{
		ID:         models.GobiernoLocal{}.TableName(),
		Nombre:     "Gobiernos Locales",
		Table:      models.GobiernoLocal{}.TableName(),
		Projection: []string{"id", "nam AS nombre", colCMU, colCodDepto, "geom"},
	},
	{
		ID:         models.Departamento{}.TableName(),
		Nombre:     "Departamentos",
		Table:      models.Departamento{}.TableName(),
		Projection: []string{"id", "nam AS nombre", "in1 AS codigo", "geom"},
	},
}

// LayerByID looks a layer up by its catalog id.
func LayerByID(id string) (Layer, bool) {
	for _, l := range Catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}
