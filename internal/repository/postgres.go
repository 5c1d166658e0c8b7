package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// PostgresRecorder appends fused samples to a samples table, one nullable
// double-precision column per sensor field. The table is created on the
// first Record call of the process lifetime, mirroring the header-once
// contract of the collection format.
type PostgresRecorder struct {
	db     *sql.DB
	table  string
	logger *zap.Logger

	schemaOnce sync.Once
	schemaErr  error

	insertQuery string
}

// NewPostgresRecorder creates a recorder writing to the given table.
func NewPostgresRecorder(db *sql.DB, table string, logger *zap.Logger) *PostgresRecorder {
	return &PostgresRecorder{
		db:          db,
		table:       table,
		logger:      logger,
		insertQuery: buildInsertQuery(table),
	}
}

// Record inserts one row. Missing fields become NULL, matching the empty
// cells the original rows carried when a rig omitted a reading.
func (r *PostgresRecorder) Record(ctx context.Context, sample *models.FusedSample) error {
	r.schemaOnce.Do(func() {
		r.schemaErr = r.ensureSchema(ctx)
	})
	if r.schemaErr != nil {
		return fmt.Errorf("failed to ensure samples table: %w", r.schemaErr)
	}

	args := make([]interface{}, 0, len(models.Columns))
	args = append(args, sample.Timestamp)
	for _, column := range models.Columns[1:] {
		if v, ok := sample.Values[column]; ok {
			args = append(args, sql.NullFloat64{Float64: v, Valid: true})
		} else {
			args = append(args, sql.NullFloat64{})
		}
	}

	if _, err := r.db.ExecContext(ctx, r.insertQuery, args...); err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}

	r.logger.Debug("Persisted fused sample",
		zap.String("table", r.table),
		zap.String("timestamp", sample.Timestamp),
	)
	return nil
}

// Close is a no-op; the recorder does not own the database handle.
func (r *PostgresRecorder) Close() error {
	return nil
}

func (r *PostgresRecorder) ensureSchema(ctx context.Context) error {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (", quoteIdent(r.table))
	b.WriteString("id BIGSERIAL PRIMARY KEY, ")
	b.WriteString(quoteIdent("timestamp"))
	b.WriteString(" TEXT NOT NULL")
	for _, column := range models.Columns[1:] {
		b.WriteString(", ")
		b.WriteString(quoteIdent(column))
		b.WriteString(" DOUBLE PRECISION")
	}
	b.WriteString(")")

	_, err := r.db.ExecContext(ctx, b.String())
	return err
}

func buildInsertQuery(table string) string {
	quoted := make([]string, len(models.Columns))
	placeholders := make([]string, len(models.Columns))
	for i, column := range models.Columns {
		quoted[i] = quoteIdent(column)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
}

// quoteIdent quotes an identifier; the PIR columns are case-sensitive.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
