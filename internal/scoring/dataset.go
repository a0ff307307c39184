package scoring

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// Vocabularies the synthetic dataset draws from. These become the one-hot
// vocabularies of the fitted pipeline, so the prediction form must offer
// the same options.
var (
	Departments     = []string{"IT", "HR", "Finance", "Sales", "Operations"}
	JobRoles        = []string{"Executive", "Manager", "Senior", "Junior"}
	EducationLevels = []string{"High School", "Bachelor", "Master", "PhD"}
)

// DatasetColumns is the dataframe column order of the training CSV,
// label column excluded.
var DatasetColumns = []string{
	colAge, colDepartment, colJobRole, colEducation, colMonthlyIncome,
	colYearsAtCompany, colJobLevel, colJobSatisfaction, colWorkLifeBalance, colOverTime,
}

// Dataset is a labeled training set of employee records.
type Dataset struct {
	Records []Record
	Labels  []int
}

// Synthesize generates n employee rows with a seeded generator. Attrition
// labels follow an additive risk rule over satisfaction, work-life balance,
// overtime, tenure and income, with a little gaussian noise, thresholded
// at 0.5.
func Synthesize(n int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{Records: make([]Record, 0, n), Labels: make([]int, 0, n)}
	for i := 0; i < n; i++ {
		rec := Record{
			Age:             float64(21 + rng.Intn(39)),
			Department:      Departments[rng.Intn(len(Departments))],
			JobRole:         JobRoles[rng.Intn(len(JobRoles))],
			Education:       EducationLevels[rng.Intn(len(EducationLevels))],
			MonthlyIncome:   float64(20000 + rng.Intn(180000)),
			YearsAtCompany:  float64(rng.Intn(20)),
			JobLevel:        float64(1 + rng.Intn(5)),
			JobSatisfaction: float64(1 + rng.Intn(4)),
			WorkLifeBalance: float64(1 + rng.Intn(4)),
			OvertimeFlag:    float64(rng.Intn(2)),
		}
		risk := 0.0
		if rec.JobSatisfaction <= 2 {
			risk += 0.3
		}
		if rec.WorkLifeBalance <= 2 {
			risk += 0.25
		}
		if rec.OvertimeFlag == 1 {
			risk += 0.2
		}
		if rec.YearsAtCompany < 2 {
			risk += 0.15
		}
		if rec.MonthlyIncome < 40000 {
			risk += 0.2
		}
		prob := risk + rng.NormFloat64()*0.05
		if prob < 0 {
			prob = 0
		}
		if prob > 1 {
			prob = 1
		}
		label := 0
		if prob > 0.5 {
			label = 1
		}
		ds.Records = append(ds.Records, rec)
		ds.Labels = append(ds.Labels, label)
	}
	return ds
}

// WriteCSV writes the dataset with an Attrition label column appended.
func (ds *Dataset) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, DatasetColumns...), "Attrition")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, rec := range ds.Records {
		row := make([]string, 0, len(header))
		for _, col := range DatasetColumns {
			if v, ok := rec.numericValue(col); ok {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
				continue
			}
			v, _ := rec.categoricalValue(col)
			row = append(row, v)
		}
		row = append(row, strconv.Itoa(ds.Labels[i]))
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
