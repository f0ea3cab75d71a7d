package layers_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"carto_censal/internal/layers"
	"carto_censal/internal/store"
)

type call struct {
	name  string
	query string
	args  []any
}

// fakeQuerier implements store.Querier without a database, recording
// every call and answering from canned fixtures keyed by query name.
type fakeQuerier struct {
	calls   []call
	json    map[string][]byte
	buckets map[string][]store.Bucket
	names   []string
	errOn   string
	updates [][2]int64
}

func (f *fakeQuerier) record(name, query string, args []any) error {
	f.calls = append(f.calls, call{name: name, query: query, args: args})
	if f.errOn != "" && f.errOn == name {
		return &store.QueryError{Context: name, Err: errors.New("connection refused")}
	}
	return nil
}

func (f *fakeQuerier) QueryJSON(_ context.Context, name, query string, args ...any) ([]byte, error) {
	if err := f.record(name, query, args); err != nil {
		return nil, err
	}
	return f.json[name], nil
}

func (f *fakeQuerier) QueryBuckets(_ context.Context, name, query string, args ...any) ([]store.Bucket, error) {
	if err := f.record(name, query, args); err != nil {
		return nil, err
	}
	return f.buckets[name], nil
}

func (f *fakeQuerier) QueryNames(_ context.Context, name, query string, args ...any) ([]string, error) {
	if err := f.record(name, query, args); err != nil {
		return nil, err
	}
	return f.names, nil
}

func (f *fakeQuerier) UpdateEstado(_ context.Context, id, estado int64) error {
	if err := f.record("estado_update", "", nil); err != nil {
		return err
	}
	f.updates = append(f.updates, [2]int64{id, estado})
	return nil
}

func mustLayer(t *testing.T, id string) layers.Layer {
	t.Helper()
	l, ok := layers.LayerByID(id)
	if !ok {
		t.Fatalf("layer %q missing from catalog", id)
	}
	return l
}

// TestCollection_EmptyResult verifies that a NULL aggregate from the
// store is served as an empty FeatureCollection.
func TestCollection_EmptyResult(t *testing.T) {
	q := &fakeQuerier{}
	svc := layers.NewService(q)

	fc, err := svc.Collection(context.Background(), mustLayer(t, "loc_censal_2022"), layers.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc == nil || fc.Features == nil || len(fc.Features) != 0 {
		t.Errorf("expected empty collection, got %#v", fc)
	}
}

// TestCollection_FilterApplied verifies the department predicate lands
// in the WHERE clause with its args bound, for the filterable layer.
func TestCollection_FilterApplied(t *testing.T) {
	q := &fakeQuerier{}
	svc := layers.NewService(q)

	filter := layers.ResolveDepartamento("Quitilipi")
	if _, err := svc.Collection(context.Background(), mustLayer(t, "pjes_censal_2022"), filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(q.calls) != 1 {
		t.Fatalf("expected 1 store call, got %d", len(q.calls))
	}
	got := q.calls[0]
	if got.name != "pjes_censal_2022" {
		t.Errorf("wrong query name: %q", got.name)
	}
	if !strings.Contains(got.query, "WHERE") {
		t.Errorf("filter missing from query: %s", got.query)
	}
	if !strings.Contains(got.query, "ST_AsGeoJSON") {
		t.Errorf("geometry conversion missing from query: %s", got.query)
	}
	if len(got.args) != 1 || got.args[0] != "Quitilipi" {
		t.Errorf("expected bound arg [Quitilipi], got %#v", got.args)
	}
}

// TestCollection_FilterIgnoredOnUnfilterableLayer verifies that layers
// outside the paraje join path never receive the predicate.
func TestCollection_FilterIgnoredOnUnfilterableLayer(t *testing.T) {
	q := &fakeQuerier{}
	svc := layers.NewService(q)

	filter := layers.ResolveDepartamento("Quitilipi")
	if _, err := svc.Collection(context.Background(), mustLayer(t, "dpto_chaco"), filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := q.calls[0]
	if strings.Contains(got.query, "WHERE") {
		t.Errorf("filter leaked into unfilterable layer: %s", got.query)
	}
	if len(got.args) != 0 {
		t.Errorf("expected no args, got %#v", got.args)
	}
}

// TestCollection_QueryFailure verifies store failures surface as
// QueryError carrying the layer name.
func TestCollection_QueryFailure(t *testing.T) {
	q := &fakeQuerier{errOn: "gob_locales_2022"}
	svc := layers.NewService(q)

	_, err := svc.Collection(context.Background(), mustLayer(t, "gob_locales_2022"), layers.Filter{})
	if err == nil {
		t.Fatal("expected error")
	}
	var qe *store.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QueryError, got %T", err)
	}
	if qe.Context != "gob_locales_2022" {
		t.Errorf("expected layer name in error context, got %q", qe.Context)
	}
}

// TestCollection_SanitizesDocument verifies the builder output never
// carries a geometry property key and drops invalid geometries.
func TestCollection_SanitizesDocument(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[-60.7,-26.9]},"properties":{"id":7,"geom":"leak"}},
		{"type":"Feature","geometry":null,"properties":{"id":8}}
	]}`
	q := &fakeQuerier{json: map[string][]byte{"loc_censal_2022": []byte(doc)}}
	svc := layers.NewService(q)

	fc, err := svc.Collection(context.Background(), mustLayer(t, "loc_censal_2022"), layers.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature after sanitization, got %d", len(fc.Features))
	}
	if _, ok := fc.Features[0].Properties["geom"]; ok {
		t.Error("geom property key survived sanitization")
	}
}

// TestDepartamentos verifies the ascending name listing passes through
// untouched (duplicates included) and nil normalizes to empty.
func TestDepartamentos(t *testing.T) {
	q := &fakeQuerier{names: []string{"Almirante Brown", "Bermejo", "Bermejo"}}
	svc := layers.NewService(q)

	names, err := svc.Departamentos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 || names[2] != "Bermejo" {
		t.Errorf("expected duplicate passthrough, got %#v", names)
	}
	if !strings.Contains(q.calls[0].query, "ORDER BY nam") {
		t.Errorf("listing is not ordered: %s", q.calls[0].query)
	}

	empty := layers.NewService(&fakeQuerier{})
	names, err = empty.Departamentos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names == nil {
		t.Error("expected empty slice, got nil")
	}
}

// TestSetEstado verifies the update reaches the querier with both
// values.
func TestSetEstado(t *testing.T) {
	q := &fakeQuerier{}
	svc := layers.NewService(q)

	if err := svc.SetEstado(context.Background(), 42, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.updates) != 1 || q.updates[0] != [2]int64{42, 3} {
		t.Errorf("expected update (42,3), got %#v", q.updates)
	}
}
