// Package pipeline orchestrates the read-normalize-clean-merge run that
// builds the canonical disaster table.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/bencana-dashboard/internal/domain"
	"github.com/couchcryptid/bencana-dashboard/internal/observability"
)

// SheetReader reads one worksheet of a workbook as a raw cell grid.
type SheetReader interface {
	ReadSheet(path, sheet string) ([][]string, error)
}

// Source couples one yearly workbook with its schema mapping.
type Source struct {
	Year    int
	Path    string
	Mapping domain.Mapping
}

// Ingestor builds the canonical table from the configured sources and
// publishes it atomically, so summary readers never see a partial table.
// A failed re-ingest leaves the previous table in place.
type Ingestor struct {
	reader  SheetReader
	sources []Source
	policy  domain.CoercionPolicy
	logger  *slog.Logger
	metrics *observability.Metrics

	mu      sync.Mutex // serializes ingest runs
	table   atomic.Pointer[domain.Table]
	reports atomic.Pointer[[]domain.CleanReport]
}

// New creates an Ingestor over the given sources.
func New(reader SheetReader, sources []Source, policy domain.CoercionPolicy, logger *slog.Logger, metrics *observability.Metrics) *Ingestor {
	return &Ingestor{
		reader:  reader,
		sources: sources,
		policy:  policy,
		logger:  logger,
		metrics: metrics,
	}
}

// LoadAndClean runs one source through read, normalize, and clean.
// Structural problems (unreadable file, unmappable columns) return a
// ReadError or SchemaError; row-level problems land in the CleanReport.
func (in *Ingestor) LoadAndClean(src Source) ([]domain.DisasterRecord, domain.CleanReport, error) {
	rows, err := in.reader.ReadSheet(src.Path, src.Mapping.Sheet)
	if err != nil {
		return nil, domain.CleanReport{}, err
	}

	raws, err := domain.Normalize(rows, src.Mapping, src.Year)
	if err != nil {
		return nil, domain.CleanReport{}, err
	}

	records, report := domain.Clean(raws, src.Year, in.policy)

	in.logger.Info("workbook cleaned",
		"year", src.Year,
		"path", src.Path,
		"rows_read", report.RowsRead,
		"rows_kept", report.RowsKept,
		"zero_filled_cells", report.ZeroFilledCells,
		"clamped_cells", report.ClampedCells,
		"duplicates_dropped", report.DuplicatesDropped,
	)

	return records, report, nil
}

// Ingest rebuilds the canonical table wholesale from every source. The
// swap happens only after all sources load, so a structural error in any
// file blocks partial aggregates from ever being served.
func (in *Ingestor) Ingest(ctx context.Context) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	batches := make([][]domain.DisasterRecord, 0, len(in.sources))
	reports := make([]domain.CleanReport, 0, len(in.sources))
	for _, src := range in.sources {
		records, report, err := in.LoadAndClean(src)
		if err != nil {
			in.metrics.IngestRuns.WithLabelValues("error").Inc()
			in.logger.Error("ingest failed", "year", src.Year, "path", src.Path, "error", err)
			return err
		}
		batches = append(batches, records)
		reports = append(reports, report)
	}

	table := domain.Merge(batches...)
	in.table.Store(table)
	in.reports.Store(&reports)

	// Row-quality counters reflect published data only, so they are
	// emitted after the swap. A run that dies on a later source must
	// not count rows nobody can query.
	for _, report := range reports {
		in.emitReportMetrics(report)
	}

	in.metrics.DatasetRows.Set(float64(table.Len()))
	in.metrics.IngestDuration.Observe(time.Since(start).Seconds())
	in.metrics.IngestRuns.WithLabelValues("success").Inc()

	in.logger.Info("canonical table rebuilt", "rows", table.Len(), "years", table.Years())
	return nil
}

func (in *Ingestor) emitReportMetrics(report domain.CleanReport) {
	year := strconv.Itoa(report.Year)
	in.metrics.RowsIngested.WithLabelValues(year).Add(float64(report.RowsKept))
	in.metrics.RowsSkipped.WithLabelValues(year, "empty_province").Add(float64(report.EmptyProvince))
	in.metrics.RowsSkipped.WithLabelValues(year, "placeholder_code").Add(float64(report.PlaceholderCode))
	in.metrics.RowsSkipped.WithLabelValues(year, "rejected").Add(float64(report.RejectedRows))
	in.metrics.CellsZeroFilled.WithLabelValues(year).Add(float64(report.ZeroFilledCells))
	in.metrics.CellsClamped.WithLabelValues(year).Add(float64(report.ClampedCells))
	in.metrics.DuplicatesDropped.WithLabelValues(year).Add(float64(report.DuplicatesDropped))
}

// Table returns the current canonical table, or nil before the first
// successful ingest.
func (in *Ingestor) Table() *domain.Table {
	return in.table.Load()
}

// Reports returns the clean reports from the last successful ingest,
// one per source year.
func (in *Ingestor) Reports() []domain.CleanReport {
	p := in.reports.Load()
	if p == nil {
		return nil
	}
	out := make([]domain.CleanReport, len(*p))
	copy(out, *p)
	return out
}

// CheckReadiness returns nil once a canonical table has been published.
func (in *Ingestor) CheckReadiness(_ context.Context) error {
	if in.table.Load() == nil {
		return errors.New("canonical table has not been ingested yet")
	}
	return nil
}
