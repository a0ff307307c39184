package scoring

// Record is the fixed-shape employee attribute record the pipeline was fit
// on. Field names and categorical vocabularies must match the training
// schema exactly; Predict rejects anything else.
type Record struct {
	Age             float64 `json:"age"`
	MonthlyIncome   float64 `json:"monthly_income"`
	YearsAtCompany  float64 `json:"years_at_company"`
	JobLevel        float64 `json:"job_level"`
	WorkLifeBalance float64 `json:"work_life_balance"`
	JobSatisfaction float64 `json:"job_satisfaction"`
	OvertimeFlag    float64 `json:"overtime_flag"`
	Education       string  `json:"education"`
	Department      string  `json:"department"`
	JobRole         string  `json:"job_role"`
}

// Column names as they appear in the training dataset.
const (
	colAge             = "Age"
	colMonthlyIncome   = "MonthlyIncome"
	colYearsAtCompany  = "YearsAtCompany"
	colJobLevel        = "JobLevel"
	colWorkLifeBalance = "WorkLifeBalance"
	colJobSatisfaction = "JobSatisfaction"
	colOverTime        = "OverTime"
	colEducation       = "Education"
	colDepartment      = "Department"
	colJobRole         = "JobRole"
)

func (r Record) numericValue(name string) (float64, bool) {
	switch name {
	case colAge:
		return r.Age, true
	case colMonthlyIncome:
		return r.MonthlyIncome, true
	case colYearsAtCompany:
		return r.YearsAtCompany, true
	case colJobLevel:
		return r.JobLevel, true
	case colWorkLifeBalance:
		return r.WorkLifeBalance, true
	case colJobSatisfaction:
		return r.JobSatisfaction, true
	case colOverTime:
		return r.OvertimeFlag, true
	}
	return 0, false
}

func (r Record) categoricalValue(name string) (string, bool) {
	switch name {
	case colEducation:
		return r.Education, true
	case colDepartment:
		return r.Department, true
	case colJobRole:
		return r.JobRole, true
	}
	return "", false
}
