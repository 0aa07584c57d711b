// Package mailer sends dues reminders over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/config"
	"github.com/hsmb/treasury/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, log *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// SendDuesReminder mails one member whose effective balance has gone
// negative. now anchors the month names in the message body.
func (s *Sender) SendDuesReminder(m models.Member, now time.Time) error {
	if m.Email == "" {
		return fmt.Errorf("no email address on record for %s", m.Name)
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{m.Email}
	if s.cfg.ReminderCC != "" {
		e.Cc = []string{s.cfg.ReminderCC}
	}
	e.Subject = "Membership Dues"

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"According to our records, your account balance is currently $%s. "+
			"Dues for the month of %s were due on %s 15th. "+
			"If you believe there is an issue with this record, please let us know.\n\n"+
			"Thank you,\n\n- Your Board of Directors",
		m.Name, m.EffectiveBalance,
		now.AddDate(0, 1, 0).Month(), now.Month(),
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.log.Errorf("Failed to send reminder to %s: %v", m.Email, err)
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	s.log.Infof("Reminder sent to %s (balance %s)", m.Email, m.EffectiveBalance)
	return nil
}

// RemindDelinquent mails every member of the roster whose effective
// balance is negative. Members without an address are logged and
// skipped; a transport failure for one member does not stop the rest.
func (s *Sender) RemindDelinquent(roster []models.Member, now time.Time) int {
	sent := 0
	for _, m := range roster {
		if !m.EffectiveBalance.IsNegative() {
			continue
		}
		if m.Email == "" {
			s.log.Warnf("%s owes %s but has no email address on record", m.Name, m.EffectiveBalance)
			continue
		}
		if err := s.SendDuesReminder(m, now); err == nil {
			sent++
		}
	}
	return sent
}
