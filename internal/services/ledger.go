package services

import (
	"math"

	"github.com/peopleops/attrition/internal/models"
	"gorm.io/gorm"
)

// LedgerService owns the append-only predictions table. Every reporting
// view is computed from the rows at read time; nothing derived is stored,
// so threshold changes never touch the schema.
type LedgerService struct {
	DB *gorm.DB
	// HighRiskThreshold is the exclusive lower bound for the alerts view
	// and the dashboard's high-risk count.
	HighRiskThreshold float64
}

func NewLedgerService(db *gorm.DB, highRiskThreshold float64) *LedgerService {
	return &LedgerService{DB: db, HighRiskThreshold: highRiskThreshold}
}

// Summary is the dashboard's headline aggregate view.
type Summary struct {
	Total       int64   `json:"total"`
	AvgRisk     float64 `json:"avg_risk"`
	HighRisk    int64   `json:"high_risk"`
	Departments int64   `json:"departments"`
}

// DepartmentRisk is one cell of the per-department heatmap.
type DepartmentRisk struct {
	Department string  `json:"department"`
	AvgRisk    float64 `json:"avg_risk"`
}

// DailyRisk is one point of the dashboard trend line.
type DailyRisk struct {
	Day     string  `json:"day"`
	AvgRisk float64 `json:"avg_risk"`
}

// Append validates and persists one scoring event, returning the assigned id.
// A score outside [0,1] is a scoring-adapter contract violation and is
// rejected rather than clamped.
func (s *LedgerService) Append(user, department string, risk float64) (uint, error) {
	if math.IsNaN(risk) || risk < 0 || risk > 1 {
		return 0, ErrInvalidScore
	}
	rec := models.Prediction{User: user, Department: department, Risk: risk}
	if err := s.DB.Create(&rec).Error; err != nil {
		return 0, wrapStorage(err)
	}
	return rec.ID, nil
}

// All returns the ledger in insertion order.
func (s *LedgerService) All() ([]models.Prediction, error) {
	var recs []models.Prediction
	if err := s.DB.Order("id").Find(&recs).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return recs, nil
}

// Count returns the ledger length.
func (s *LedgerService) Count() (int64, error) {
	var n int64
	if err := s.DB.Model(&models.Prediction{}).Count(&n).Error; err != nil {
		return 0, wrapStorage(err)
	}
	return n, nil
}

// Summarize computes the dashboard aggregates in a single pass.
func (s *LedgerService) Summarize() (Summary, error) {
	var sum Summary
	row := s.DB.Model(&models.Prediction{}).
		Select("COUNT(*) AS total, COALESCE(AVG(risk), 0) AS avg_risk, COALESCE(SUM(risk > ?), 0) AS high_risk, COUNT(DISTINCT department) AS departments", s.HighRiskThreshold)
	if err := row.Scan(&sum).Error; err != nil {
		return Summary{}, wrapStorage(err)
	}
	return sum, nil
}

// MeanByDepartment returns the average risk per department, ordered by name.
func (s *LedgerService) MeanByDepartment() ([]DepartmentRisk, error) {
	var out []DepartmentRisk
	err := s.DB.Model(&models.Prediction{}).
		Select("department, AVG(risk) AS avg_risk").
		Group("department").Order("department").Scan(&out).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// HighRiskRecords returns ledger rows above the high-risk threshold.
func (s *LedgerService) HighRiskRecords() ([]models.Prediction, error) {
	var recs []models.Prediction
	if err := s.DB.Where("risk > ?", s.HighRiskThreshold).Order("id").Find(&recs).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return recs, nil
}

// DailyTrend returns the mean risk per calendar day in chronological order.
func (s *LedgerService) DailyTrend() ([]DailyRisk, error) {
	var out []DailyRisk
	err := s.DB.Model(&models.Prediction{}).
		Select("date(created_at) AS day, AVG(risk) AS avg_risk").
		Group("date(created_at)").Order("day").Scan(&out).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}
