// Command dashboard serves the disaster recap dashboard API. It ingests
// the two yearly BNPB recap workbooks at startup, holds the cleaned and
// merged table in memory, and answers summary queries until shut down.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/bencana-dashboard/internal/adapter/excel"
	httpadapter "github.com/couchcryptid/bencana-dashboard/internal/adapter/http"
	"github.com/couchcryptid/bencana-dashboard/internal/config"
	"github.com/couchcryptid/bencana-dashboard/internal/observability"
	"github.com/couchcryptid/bencana-dashboard/internal/pipeline"
)

func main() {
	// Optional .env for local runs; the environment wins over the file.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	sources, err := buildSources(cfg)
	if err != nil {
		logger.Error("failed to build sources", "error", err)
		os.Exit(1)
	}

	reader := excel.NewReader(logger)
	ingestor := pipeline.New(reader, sources, cfg.Policy(), logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A structural problem in either workbook blocks startup: serving
	// partial aggregates would silently undercount.
	if err := ingestor.Ingest(ctx); err != nil {
		logger.Error("initial ingest failed", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ingestor, cfg.DefaultTopN, logger, metrics)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

func buildSources(cfg *config.Config) ([]pipeline.Source, error) {
	paths := map[int]string{
		2023: cfg.Data2023Path,
		2024: cfg.Data2024Path,
	}

	sources := make([]pipeline.Source, 0, len(paths))
	for _, year := range []int{2023, 2024} {
		mapping, ok := pipeline.MappingForYear(year)
		if !ok {
			return nil, errors.New("no schema mapping for year")
		}
		sources = append(sources, pipeline.Source{Year: year, Path: paths[year], Mapping: mapping})
	}
	return sources, nil
}
