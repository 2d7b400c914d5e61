// Command almapull fetches 852 holdings reports from Alma Analytics for
// one or more institutions, records each pull in the holdings database,
// and writes one data workbook per institution.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/alma"
	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/export"
	"github.com/ils-data/marc852-audit/internal/store"
)

func main() {
	var (
		configPath   = flag.String("config", "", "config file path (default $CONFIG_PATH or config.yaml)")
		registryPath = flag.String("registry", "registry.json", "institution registry file")
		outDir       = flag.String("out", "", "output directory for data workbooks (overrides config)")
		all          = flag.Bool("all", false, "pull every institution that has an API key set")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if !*all && flag.NArg() == 0 {
		logger.Error("usage", "cmd", "almapull [flags] CODE [CODE ...] | almapull -all")
		os.Exit(2)
	}

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	registry, err := alma.LoadRegistry(*registryPath)
	if err != nil {
		logger.Error("load registry", "path", *registryPath, "error", err)
		os.Exit(1)
	}

	codes, err := resolveCodes(registry, *all, flag.Args(), logger)
	if err != nil {
		logger.Error("resolve institutions", "error", err)
		os.Exit(1)
	}
	if len(codes) == 0 {
		logger.Error("no institutions to pull")
		os.Exit(1)
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("create output directory", "dir", dir, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.Open(cfg.Store.Path, logger)
	if err != nil {
		logger.Error("open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("close store", "error", cerr)
		}
	}()

	svc := export.NewService(logger)
	failures := 0
	for _, code := range codes {
		if err := pullInstitution(ctx, cfg, registry, st, svc, dir, code, logger); err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("pull interrupted", "institution", code)
				break
			}
			logger.Error("pull failed", "institution", code, "error", err)
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// resolveCodes turns the CLI selection into registry codes that have an
// API key. With -all, keyless institutions are skipped with a warning;
// an unknown explicit code is an error.
func resolveCodes(registry *alma.Registry, all bool, args []string, logger *slog.Logger) ([]string, error) {
	requested := registry.Codes()
	if !all {
		requested = make([]string, 0, len(args))
		for _, arg := range args {
			code := strings.ToUpper(arg)
			if _, err := registry.Get(code); err != nil {
				return nil, err
			}
			requested = append(requested, code)
		}
	}

	codes := make([]string, 0, len(requested))
	for _, code := range requested {
		if _, err := registry.APIKey(code); err != nil {
			logger.Warn("skipping institution without API key", "institution", code)
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func pullInstitution(ctx context.Context, cfg *common.Config, registry *alma.Registry, st *store.Store, svc *export.Service, dir, code string, logger *slog.Logger) error {
	inst, err := registry.Get(code)
	if err != nil {
		return err
	}
	key, err := registry.APIKey(code)
	if err != nil {
		return err
	}

	logger.Info("pull.start", "institution", code, "report", inst.ReportPath)
	client := alma.NewClient(alma.Config{
		BaseURL:   cfg.Alma.BaseURL,
		APIKey:    key,
		PageLimit: cfg.Alma.PageLimit,
		PageDelay: cfg.Alma.PageDelay(),
		Timeout:   cfg.Alma.HTTPTimeout(),
	}, logger)

	runID, err := st.BeginRun(ctx, code, inst.ReportPath)
	if err != nil {
		return err
	}

	report, err := client.FetchReport(ctx, inst.ReportPath)
	if err != nil {
		if ferr := st.FinishRun(ctx, runID, constants.RunStatusFailed, 0); ferr != nil {
			logger.Warn("mark run failed", "run_id", runID, "error", ferr)
		}
		return err
	}
	if len(report.Rows) == 0 {
		logger.Warn("no data returned", "institution", code)
		return st.FinishRun(ctx, runID, constants.RunStatusOK, 0)
	}

	records := alma.MapRows(report.Columns, report.Rows)
	n, err := st.InsertHoldings(ctx, runID, code, records)
	if err != nil {
		if ferr := st.FinishRun(ctx, runID, constants.RunStatusFailed, n); ferr != nil {
			logger.Warn("mark run failed", "run_id", runID, "error", ferr)
		}
		return err
	}
	if err := st.FinishRun(ctx, runID, constants.RunStatusOK, n); err != nil {
		return err
	}

	outPath := filepath.Join(dir, code+"_852_data.xlsx")
	if err := svc.WriteDataWorkbook(outPath, records); err != nil {
		return err
	}
	logger.Info("pull.ok", "institution", code, "rows", n, "output", outPath)
	return nil
}
