package handlers

import (
	"errors"
	"net/http"

	"github.com/peopleops/attrition/auth"
	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/scoring"
	"github.com/peopleops/attrition/internal/services"
	"github.com/peopleops/attrition/validation"
)

// Scorer produces an attrition-risk probability for one employee record.
// The server hands in the loaded model; tests hand in stubs.
type Scorer interface {
	Predict(scoring.Record) (float64, error)
}

// Risk bands reported alongside a prediction, aligned with the gauge steps
// of the original dashboard.
const (
	moderateRiskFloor = 0.3
	highRiskFloor     = 0.6
)

func riskBand(risk float64) string {
	switch {
	case risk >= highRiskFloor:
		return "high"
	case risk >= moderateRiskFloor:
		return "moderate"
	default:
		return "low"
	}
}

type PredictHandler struct {
	Ledger *services.LedgerService
	Scorer Scorer
}

func NewPredictHandler(ledger *services.LedgerService, scorer Scorer) *PredictHandler {
	return &PredictHandler{Ledger: ledger, Scorer: scorer}
}

type predictResponse struct {
	ID   uint    `json:"id"`
	Risk float64 `json:"risk"`
	Band string  `json:"band"`
}

// Predict scores one employee record and appends the result to the ledger.
// The scorer runs before any write so no transaction is held during the
// external computation.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var rec scoring.Record
	if err := httpx.Decode(r, &rec); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := validation.Violations{}
	validation.PositiveFloat("age", rec.Age, v)
	validation.PositiveFloat("monthly_income", rec.MonthlyIncome, v)
	validation.RangeFloat("job_satisfaction", rec.JobSatisfaction, 1, 4, v)
	validation.RangeFloat("work_life_balance", rec.WorkLifeBalance, 1, 4, v)
	validation.RangeFloat("overtime_flag", rec.OvertimeFlag, 0, 1, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	risk, err := h.Scorer.Predict(rec)
	if err != nil {
		if errors.Is(err, scoring.ErrSchemaMismatch) {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "schema_mismatch", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "scoring_error", nil)
		return
	}

	id, err := h.Ledger.Append(p.Username, rec.Department, risk)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, predictResponse{ID: id, Risk: risk, Band: riskBand(risk)})
}
