package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/LerianStudio/payments-engine/api"
	"github.com/LerianStudio/payments-engine/csvio"
	"github.com/LerianStudio/payments-engine/ledger"
	"github.com/LerianStudio/payments-engine/log"
	"github.com/LerianStudio/payments-engine/server"
	"github.com/LerianStudio/payments-engine/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	environment := flag.String("env", string(zap.EnvironmentLocal), "logger environment profile")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	listen := flag.String("listen", "", "optional address serving the final ledger over HTTP")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: engine [flags] <transactions.csv>")
	}

	logger, _, err := zap.New(zap.Config{
		Environment: zap.Environment(*environment),
		Level:       *logLevel,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	runLogger := logger.With(log.String("run_id", uuid.New().String()))

	defer func() {
		_ = runLogger.Sync(ctx)
	}()

	engine, summary, err := processFile(ctx, runLogger, flag.Arg(0))
	if err != nil {
		return err
	}

	if err := csvio.WriteAccounts(os.Stdout, engine.Accounts()); err != nil {
		return fmt.Errorf("write account report: %w", err)
	}

	logRunSummary(ctx, runLogger, summary)

	if *listen == "" {
		return nil
	}

	manager := server.NewServerManager(runLogger).
		WithHTTPServer(api.NewRouter(runLogger, engine), *listen)

	return manager.StartWithGracefulShutdown(ctx)
}

// processFile decodes the transaction file and applies every record in input
// order. Decode failures are fatal; engine failures are diagnosed and
// skipped.
func processFile(ctx context.Context, logger log.Logger, path string) (*ledger.Engine, *ledger.Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: could not open file: %w", path, err)
	}
	defer file.Close()

	records, err := csvio.ReadRecords(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	engine := ledger.NewEngine(logger)
	summary := ledger.NewSummary()

	for i, record := range records {
		err := engine.Apply(ctx, record)
		summary.Observe(err)

		if err != nil {
			// Data rows start on line 2, after the header.
			logger.Log(ctx, log.LevelWarn, "record rejected",
				log.Int("line", i+2),
				log.Stringer("record", record),
				log.Err(err),
			)
		}
	}

	return engine, summary, nil
}

func logRunSummary(ctx context.Context, logger log.Logger, summary *ledger.Summary) {
	fields := []log.Field{
		log.Int("processed", summary.Processed()),
		log.Int("accepted", summary.Accepted),
		log.String("acceptance_rate_pct", summary.AcceptanceRate().StringFixed(2)),
	}

	for code, count := range summary.Rejected {
		fields = append(fields, log.Int("rejected_"+string(code), count))
	}

	logger.Log(ctx, log.LevelInfo, "run complete", fields...)
}
