package layers_test

import (
	"strings"
	"testing"

	"carto_censal/internal/layers"
)

// TestCatalog_Entries verifies the four fixed layers and their display
// names.
func TestCatalog_Entries(t *testing.T) {
	want := []string{"pjes_censal_2022", "loc_censal_2022", "gob_locales_2022", "dpto_chaco"}

	if len(layers.Catalog) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(layers.Catalog))
	}
	for i, id := range want {
		l := layers.Catalog[i]
		if l.ID != id {
			t.Errorf("layer %d: expected id %q, got %q", i, id, l.ID)
		}
		if l.Nombre == "" {
			t.Errorf("layer %q has empty nombre", l.ID)
		}
		if l.Table == "" {
			t.Errorf("layer %q has empty table", l.ID)
		}
	}
}

// TestCatalog_Projections verifies every layer projects exactly one
// geometry column named geom.
func TestCatalog_Projections(t *testing.T) {
	for _, l := range layers.Catalog {
		geomCols := 0
		for _, col := range l.Projection {
			if col == "geom" || strings.HasSuffix(col, ".geom") {
				geomCols++
			}
		}
		if geomCols != 1 {
			t.Errorf("layer %q: expected exactly 1 geom column, got %d (%v)", l.ID, geomCols, l.Projection)
		}
	}
}

// TestCatalog_OnlyParajesFilterable verifies the depto filter applies
// to the census-point layer only.
func TestCatalog_OnlyParajesFilterable(t *testing.T) {
	for _, l := range layers.Catalog {
		want := l.ID == "pjes_censal_2022"
		if l.Filterable != want {
			t.Errorf("layer %q: Filterable = %v, want %v", l.ID, l.Filterable, want)
		}
	}
}

func TestLayerByID(t *testing.T) {
	if _, ok := layers.LayerByID("pjes_censal_2022"); !ok {
		t.Error("expected to find pjes_censal_2022")
	}
	if _, ok := layers.LayerByID("no_such_layer"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
