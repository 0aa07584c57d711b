package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// LedgerPath is the GnuCash XML file to report on. Usually given
	// as the positional argument; LEDGER_PATH is the fallback.
	LedgerPath string

	MonthsBefore int
	MonthsAfter  int
	AnchorDay    int

	CSVPath  string
	LogLevel string

	Port   string
	DBConn string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	ReminderCC   string

	ReloadSchedule   string
	ReminderSchedule string
}

// NewConfig loads configuration from the environment, reading a .env
// file first when one is present. MONTHS_CONTEXT sets both spans when
// the specific MONTHS_BEFORE / MONTHS_AFTER are absent.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	monthsContext, err := getEnvInt("MONTHS_CONTEXT", 6)
	if err != nil {
		return nil, err
	}
	monthsBefore, err := getEnvInt("MONTHS_BEFORE", monthsContext)
	if err != nil {
		return nil, err
	}
	monthsAfter, err := getEnvInt("MONTHS_AFTER", monthsContext)
	if err != nil {
		return nil, err
	}
	anchorDay, err := getEnvInt("ANCHOR_DAY", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LedgerPath:       getEnv("LEDGER_PATH", ""),
		MonthsBefore:     monthsBefore,
		MonthsAfter:      monthsAfter,
		AnchorDay:        anchorDay,
		CSVPath:          getEnv("CSV_PATH", ""),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		Port:             getEnv("PORT", "8080"),
		DBConn:           getEnv("DB_CONN", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", ""),
		ReminderCC:       getEnv("REMINDER_CC", ""),
		ReloadSchedule:   getEnv("RELOAD_SCHEDULE", "@hourly"),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "0 9 16 * *"),
	}

	return cfg, nil
}

// Validate is called after any flag overrides have been applied.
func (c *Config) Validate() error {
	if c.LedgerPath == "" {
		return fmt.Errorf("ledger path is required (argument or LEDGER_PATH)")
	}
	if c.AnchorDay < 1 || c.AnchorDay > 28 {
		return fmt.Errorf("ANCHOR_DAY must be between 1 and 28, got %d", c.AnchorDay)
	}
	if c.MonthsBefore < 1 {
		return fmt.Errorf("MONTHS_BEFORE must be at least 1, got %d: the projection needs at least one historical window", c.MonthsBefore)
	}
	if c.MonthsAfter < 0 {
		return fmt.Errorf("MONTHS_AFTER must not be negative, got %d", c.MonthsAfter)
	}
	return nil
}

// SMTPConfigured reports whether the reminder mailer can run.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
