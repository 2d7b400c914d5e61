// Command marc852-audit classifies the call numbers in an Alma holdings
// export and writes a styled analysis workbook. Input comes from an XLSX
// file (a pulled data workbook or a raw Analytics export) or, with
// -from-store, from the local holdings database filled by almapull.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/entity"
	"github.com/ils-data/marc852-audit/internal/export"
	"github.com/ils-data/marc852-audit/internal/ingest"
	"github.com/ils-data/marc852-audit/internal/pipeline"
	"github.com/ils-data/marc852-audit/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file path (default $CONFIG_PATH or config.yaml)")
		workers    = flag.Int("workers", 0, "analysis worker count (overrides config)")
		out        = flag.String("o", "", "output workbook path (default derived from input name)")
		fromStore  = flag.String("from-store", "", "institution code to analyze from the holdings database instead of a file")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	input := flag.Arg(0)
	if input == "" && *fromStore == "" {
		logger.Error("usage", "cmd", "marc852-audit [flags] input.xlsx")
		os.Exit(2)
	}

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var records []entity.HoldingRecord
	if *fromStore != "" {
		code := strings.ToUpper(*fromStore)
		records, err = loadFromStore(ctx, cfg, code, logger)
		if err != nil {
			logger.Error("load holdings from store", "institution", code, "error", err)
			os.Exit(1)
		}
		if input == "" {
			input = filepath.Join(cfg.Output.Dir, code+"_852_data.xlsx")
		}
	} else {
		records, err = ingest.ReadWorkbook(input, logger)
		if err != nil {
			logger.Error("read workbook", "path", input, "error", err)
			os.Exit(1)
		}
	}

	workerCount := cfg.Analyze.Workers
	if *workers > 0 {
		workerCount = *workers
	}
	batch := pipeline.NewBatch(logger, pipeline.WithWorkers(workerCount))
	analyzed, err := batch.Run(ctx, records)
	if err != nil {
		logger.Error("analysis aborted", "error", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = export.OutputName(input, time.Now())
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("create output directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	svc := export.NewService(logger)
	if err := svc.WriteReport(outPath, analyzed); err != nil {
		logger.Error("write report", "path", outPath, "error", err)
		os.Exit(1)
	}

	logSummary(logger, analyzed)
	logger.Info("analyze.ok", "records", len(analyzed), "output", outPath)
}

// loadFromStore reads the most recent successful pull for the
// institution and logs which run the data came from.
func loadFromStore(ctx context.Context, cfg *common.Config, code string, logger *slog.Logger) ([]entity.HoldingRecord, error) {
	st, err := store.Open(cfg.Store.Path, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("close store", "error", cerr)
		}
	}()

	run, err := st.LatestRun(ctx, code)
	if err != nil {
		return nil, err
	}
	logger.Info("store.data.source",
		"institution", code,
		"run_id", run.ID,
		"status", run.Status,
		"pulled_at", run.StartedAt,
		"rows", run.RowCount,
	)
	return st.HoldingsByInstitution(ctx, code)
}

// logSummary mirrors the classification summary table as log lines.
func logSummary(logger *slog.Logger, analyzed []entity.AnalyzedRecord) {
	sum := export.Summarize(analyzed)
	logger.Info("analyze.summary",
		"total", sum.Total,
		"with_call_number", sum.WithExtracted,
	)
	for _, bucket := range sum.ByIndicatorType {
		logger.Info("analyze.summary.bucket",
			"indicator", bucket.Indicator,
			"type", bucket.Type,
			"count", bucket.Count,
			"pct", fmt.Sprintf("%.2f", bucket.Percentage),
		)
	}
}
