package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/config"
	"github.com/hsmb/treasury/internal/export"
	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/roster"
)

func main() {
	logger := logrus.New()
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	csvPath := flag.String("csv", "members.csv", "write the roster as CSV to this path")
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.LedgerPath = flag.Arg(0)
	}
	if cfg.LedgerPath == "" {
		logger.Fatalf("Ledger path is required (argument or LEDGER_PATH)")
	}

	book, err := ledger.LoadFile(cfg.LedgerPath, logger)
	if err != nil {
		logger.Fatalf("Failed to load ledger: %v", err)
	}

	members, err := roster.Build(book, roster.DefaultTiers(), logger)
	if err != nil {
		logger.Fatalf("Failed to build roster: %v", err)
	}

	for _, m := range members {
		fmt.Println(m.Name, "has a balance of", "$"+m.EffectiveBalance.String(), "   ", m.Email)
	}

	f, err := os.Create(*csvPath)
	if err != nil {
		logger.Fatalf("Failed to create CSV file: %v", err)
	}
	defer f.Close()
	if err := export.WriteRosterCSV(f, members); err != nil {
		logger.Fatalf("Failed to write roster CSV: %v", err)
	}
	logger.Infof("Roster of %d members written to %s", len(members), *csvPath)
}
