package handlers

import (
	"net/http"

	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/services"
)

// ReportsHandler serves the read-side projections of the prediction ledger.
// Everything here is computed per request; nothing derived is stored.
type ReportsHandler struct {
	Ledger *services.LedgerService
}

func NewReportsHandler(ledger *services.LedgerService) *ReportsHandler {
	return &ReportsHandler{Ledger: ledger}
}

func (h *ReportsHandler) Predictions(w http.ResponseWriter, _ *http.Request) {
	recs, err := h.Ledger.All()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, recs)
}

func (h *ReportsHandler) Dashboard(w http.ResponseWriter, _ *http.Request) {
	sum, err := h.Ledger.Summarize()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	trend, err := h.Ledger.DailyTrend()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"summary": sum, "trend": trend})
}

func (h *ReportsHandler) Insights(w http.ResponseWriter, _ *http.Request) {
	means, err := h.Ledger.MeanByDepartment()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, means)
}

func (h *ReportsHandler) Alerts(w http.ResponseWriter, _ *http.Request) {
	recs, err := h.Ledger.HighRiskRecords()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"threshold": h.Ledger.HighRiskThreshold,
		"records":   recs,
	})
}
