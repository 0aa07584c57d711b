package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/config"
	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/mailer"
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

	dryRun := flag.Bool("dry-run", false, "list delinquent members without sending mail")
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.LedgerPath = flag.Arg(0)
	}
	if cfg.LedgerPath == "" {
		logger.Fatalf("Ledger path is required (argument or LEDGER_PATH)")
	}
	if !*dryRun && !cfg.SMTPConfigured() {
		logger.Fatalf("SMTP_HOST and SENDER_EMAIL are required to send reminders")
	}

	book, err := ledger.LoadFile(cfg.LedgerPath, logger)
	if err != nil {
		logger.Fatalf("Failed to load ledger: %v", err)
	}

	members, err := roster.Build(book, roster.DefaultTiers(), logger)
	if err != nil {
		logger.Fatalf("Failed to build roster: %v", err)
	}

	if *dryRun {
		for _, m := range members {
			if m.EffectiveBalance.IsNegative() {
				logger.Infof("%s has a balance of %s (%s)", m.Name, m.EffectiveBalance, m.Email)
			}
		}
		return
	}

	sender := mailer.NewSender(cfg, logger)
	sent := sender.RemindDelinquent(members, time.Now())
	logger.Infof("Sent %d dues reminders", sent)
}
