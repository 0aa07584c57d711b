package main

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/config"
	"github.com/hsmb/treasury/internal/handler"
	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/mailer"
	"github.com/hsmb/treasury/internal/models"
	"github.com/hsmb/treasury/internal/roster"
	"github.com/hsmb/treasury/internal/service"
)

// builder computes reports on demand against the most recently loaded
// ledger snapshot. Requests never mutate the book, so the only shared
// state is the atomic pointer swapped by the reload job.
type builder struct {
	book atomic.Pointer[ledger.Book]
	cfg  *config.Config
	log  *logrus.Logger
}

func (b *builder) Report() (models.Series, error) {
	svc := service.NewService(b.book.Load(), service.Config{
		MonthsBefore: b.cfg.MonthsBefore,
		MonthsAfter:  b.cfg.MonthsAfter,
		AnchorDay:    b.cfg.AnchorDay,
		Metrics:      service.DefaultMetrics(),
	}, b.log)
	return svc.Report(time.Now())
}

func (b *builder) Roster() ([]models.Member, error) {
	return roster.Build(b.book.Load(), roster.DefaultTiers(), b.log)
}

func (b *builder) reload() {
	book, err := ledger.LoadFile(b.cfg.LedgerPath, b.log)
	if err != nil {
		b.log.Errorf("Failed to reload ledger, keeping previous snapshot: %v", err)
		return
	}
	b.book.Store(book)
	b.log.Infof("Ledger reloaded from %s", b.cfg.LedgerPath)
}

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
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
	if len(os.Args) > 1 {
		cfg.LedgerPath = os.Args[1]
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	b := &builder{cfg: cfg, log: logger}
	book, err := ledger.LoadFile(cfg.LedgerPath, logger)
	if err != nil {
		logger.Fatalf("Failed to load ledger: %v", err)
	}
	b.book.Store(book)

	// Scheduled jobs: periodic ledger reload, monthly dues reminders
	c := cron.New()
	if _, err := c.AddFunc(cfg.ReloadSchedule, b.reload); err != nil {
		logger.Fatalf("Invalid reload schedule %q: %v", cfg.ReloadSchedule, err)
	}
	if cfg.SMTPConfigured() {
		sender := mailer.NewSender(cfg, logger)
		if _, err := c.AddFunc(cfg.ReminderSchedule, func() {
			members, err := b.Roster()
			if err != nil {
				logger.Errorf("Failed to build roster for reminders: %v", err)
				return
			}
			sent := sender.RemindDelinquent(members, time.Now())
			logger.Infof("Sent %d dues reminders", sent)
		}); err != nil {
			logger.Fatalf("Invalid reminder schedule %q: %v", cfg.ReminderSchedule, err)
		}
	}
	c.Start()
	defer c.Stop()

	// Setup router
	h := handler.NewHandler(b, logger)
	r := mux.NewRouter()
	r.HandleFunc("/report", h.Report).Methods("GET")
	r.HandleFunc("/report.csv", h.ReportCSV).Methods("GET")
	r.HandleFunc("/roster", h.Roster).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
