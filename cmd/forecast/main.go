package main

import (
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/config"
	"github.com/hsmb/treasury/internal/export"
	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/repository"
	"github.com/hsmb/treasury/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	monthsBefore := flag.Int("months-before", cfg.MonthsBefore, "historical window span in months")
	monthsAfter := flag.Int("months-after", cfg.MonthsAfter, "projection span in months")
	anchorDay := flag.Int("anchor-day", cfg.AnchorDay, "day of month defining window boundaries (1-28)")
	csvPath := flag.String("csv", cfg.CSVPath, "write the report as CSV to this path")
	flag.Parse()

	cfg.MonthsBefore = *monthsBefore
	cfg.MonthsAfter = *monthsAfter
	cfg.AnchorDay = *anchorDay
	cfg.CSVPath = *csvPath
	if flag.NArg() > 0 {
		cfg.LedgerPath = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	book, err := ledger.LoadFile(cfg.LedgerPath, logger)
	if err != nil {
		logger.Fatalf("Failed to load ledger: %v", err)
	}

	svc := service.NewService(book, service.Config{
		MonthsBefore: cfg.MonthsBefore,
		MonthsAfter:  cfg.MonthsAfter,
		AnchorDay:    cfg.AnchorDay,
		Metrics:      service.DefaultMetrics(),
	}, logger)

	series, err := svc.Report(time.Now())
	if err != nil {
		logger.Fatalf("Failed to build report: %v", err)
	}

	export.WriteText(os.Stdout, series)

	if cfg.CSVPath != "" {
		f, err := os.Create(cfg.CSVPath)
		if err != nil {
			logger.Fatalf("Failed to create CSV file: %v", err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, series); err != nil {
			logger.Fatalf("Failed to write CSV: %v", err)
		}
		logger.Infof("Report written to %s", cfg.CSVPath)
	}

	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		repo := repository.NewRepository(db)
		if err := repo.SaveSeries(series); err != nil {
			logger.Fatalf("Failed to archive report: %v", err)
		}
		logger.Infof("Archived %d snapshots", len(series))
	}
}
