package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// CSVRecorder appends fused samples to a CSV file in the collection format:
// the header row once per process lifetime, then one row per sample with
// empty cells for missing fields. The file is opened in append mode so
// collection runs accumulate.
type CSVRecorder struct {
	file          *os.File
	writer        *csv.Writer
	logger        *zap.Logger
	headerWritten bool
}

// NewCSVRecorder opens (or creates) the target file for appending.
func NewCSVRecorder(path string, logger *zap.Logger) (*CSVRecorder, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	return &CSVRecorder{
		file:   file,
		writer: csv.NewWriter(file),
		logger: logger,
	}, nil
}

// Record writes one row, flushing immediately so partial collection runs
// still leave usable data on disk.
func (r *CSVRecorder) Record(_ context.Context, sample *models.FusedSample) error {
	if !r.headerWritten {
		if err := r.writer.Write(models.Columns); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		r.headerWritten = true
	}

	row := make([]string, 0, len(models.Columns))
	row = append(row, sample.Timestamp)
	for _, column := range models.Columns[1:] {
		if v, ok := sample.Values[column]; ok {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		} else {
			row = append(row, "")
		}
	}

	if err := r.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv writer: %w", err)
	}
	return nil
}

// Close flushes pending rows and closes the file.
func (r *CSVRecorder) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
