package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/export"
	"github.com/hsmb/treasury/internal/models"
)

// ReportBuilder produces a fresh report from the current ledger
// snapshot. Implementations must be safe for concurrent use; each
// request is an independent, stateless computation.
type ReportBuilder interface {
	Report() (models.Series, error)
	Roster() ([]models.Member, error)
}

type Handler struct {
	builder ReportBuilder
	log     *logrus.Logger
}

func NewHandler(builder ReportBuilder, log *logrus.Logger) *Handler {
	return &Handler{builder: builder, log: log}
}

// Report serves the full historical + projected series as JSON
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	series, err := h.builder.Report()
	if err != nil {
		h.fail(w, "failed to build report", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

// ReportCSV serves the series in the CSV form the spreadsheet imports
func (h *Handler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	series, err := h.builder.Report()
	if err != nil {
		h.fail(w, "failed to build report", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="forecast.csv"`)
	if err := export.WriteCSV(w, series); err != nil {
		h.log.Errorf("Failed to stream CSV: %v", err)
	}
}

// Roster serves the active-member roster as JSON
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.builder.Roster()
	if err != nil {
		h.fail(w, "failed to build roster", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.log.Errorf("%s: %v", msg, err)
	http.Error(w, msg, http.StatusInternalServerError)
}
