package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"carto_censal/internal/metrics"
	"carto_censal/internal/models"
)

// Bucket is one (label, count) pair of a grouped-count query.
type Bucket struct {
	Label    string `json:"label"`
	Cantidad int64  `json:"cantidad"`
}

// QueryError wraps a store failure with the layer or query name it
// happened in. The cause text is safe to surface; credentials never
// appear in driver errors.
type QueryError struct {
	Context string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error en consulta %s: %v", e.Context, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Querier is the only interface that touches the spatial store.
// Every method runs a single parameterized statement; user input only
// ever travels through args, never through the query text.
type Querier interface {
	// QueryJSON returns the single jsonb value of a one-row query,
	// or nil when the value is SQL NULL.
	QueryJSON(ctx context.Context, name, query string, args ...any) ([]byte, error)
	// QueryBuckets returns label/cantidad rows of a grouped count.
	QueryBuckets(ctx context.Context, name, query string, args ...any) ([]Bucket, error)
	// QueryNames returns the rows of a single text column.
	QueryNames(ctx context.Context, name, query string, args ...any) ([]string, error)
	// UpdateEstado sets id_estado on the paraje rows matching id.
	// Matching zero rows is not an error.
	UpdateEstado(ctx context.Context, id, estado int64) error
}

// DB implements Querier over a gorm connection pool.
type DB struct {
	db      *gorm.DB
	timeout time.Duration
}

func New(db *gorm.DB, timeout time.Duration) *DB {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DB{db: db, timeout: timeout}
}

func (d *DB) QueryJSON(ctx context.Context, name, query string, args ...any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	defer d.observe(name, time.Now())

	var doc sql.NullString
	if err := d.db.WithContext(ctx).Raw(query, args...).Scan(&doc).Error; err != nil {
		return nil, d.fail(name, err)
	}
	if !doc.Valid {
		return nil, nil
	}
	return []byte(doc.String), nil
}

func (d *DB) QueryBuckets(ctx context.Context, name, query string, args ...any) ([]Bucket, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	defer d.observe(name, time.Now())

	var buckets []Bucket
	if err := d.db.WithContext(ctx).Raw(query, args...).Scan(&buckets).Error; err != nil {
		return nil, d.fail(name, err)
	}
	return buckets, nil
}

func (d *DB) QueryNames(ctx context.Context, name, query string, args ...any) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	defer d.observe(name, time.Now())

	var names []string
	if err := d.db.WithContext(ctx).Raw(query, args...).Scan(&names).Error; err != nil {
		return nil, d.fail(name, err)
	}
	return names, nil
}

func (d *DB) UpdateEstado(ctx context.Context, id, estado int64) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	defer d.observe("estado_update", time.Now())

	tx := d.db.WithContext(ctx).
		Model(&models.Paraje{}).
		Where("id = ?", id).
		Update("id_estado", estado)
	if tx.Error != nil {
		return d.fail("estado_update", tx.Error)
	}

	logrus.WithFields(logrus.Fields{
		"id":     id,
		"estado": estado,
		"rows":   tx.RowsAffected,
	}).Info("estado updated")
	return nil
}

func (d *DB) observe(name string, start time.Time) {
	elapsed := time.Since(start)
	metrics.QueryDuration.With(prometheus.Labels{"query": name}).Observe(elapsed.Seconds())
	logrus.WithFields(logrus.Fields{"query": name, "elapsed": elapsed}).Debug("store query")
}

func (d *DB) fail(name string, err error) error {
	metrics.QueryErrors.With(prometheus.Labels{"query": name}).Inc()
	logrus.WithError(err).WithField("query", name).Error("store query failed")
	return &QueryError{Context: name, Err: err}
}
