package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeIsDeterministic(t *testing.T) {
	a := Synthesize(200, 42)
	b := Synthesize(200, 42)
	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Labels, b.Labels)

	c := Synthesize(200, 43)
	assert.NotEqual(t, a.Records, c.Records)
}

func TestSynthesizeLabelsBothClasses(t *testing.T) {
	ds := Synthesize(2000, 42)
	pos := 0
	for _, l := range ds.Labels {
		pos += l
	}
	assert.Greater(t, pos, 0)
	assert.Less(t, pos, len(ds.Labels))
}

func TestFitLearnsRiskSignal(t *testing.T) {
	train := Synthesize(4000, 42)
	m, err := Fit(train, DefaultEpochs, DefaultLearningRate)
	require.NoError(t, err)

	// held-out accuracy against the same generating process
	holdout := Synthesize(1000, 99)
	acc, err := m.Accuracy(holdout)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.8)

	risky := Record{Age: 25, MonthlyIncome: 25000, YearsAtCompany: 0, JobLevel: 1,
		WorkLifeBalance: 1, JobSatisfaction: 1, OvertimeFlag: 1,
		Education: "High School", Department: "Sales", JobRole: "Junior"}
	stable := Record{Age: 45, MonthlyIncome: 150000, YearsAtCompany: 15, JobLevel: 4,
		WorkLifeBalance: 4, JobSatisfaction: 4, OvertimeFlag: 0,
		Education: "Master", Department: "Finance", JobRole: "Executive"}

	pRisky, err := m.Predict(risky)
	require.NoError(t, err)
	pStable, err := m.Predict(stable)
	require.NoError(t, err)
	assert.Greater(t, pRisky, pStable)
}

func TestFitRejectsBadInput(t *testing.T) {
	_, err := Fit(nil, 10, 0.1)
	assert.Error(t, err)
	_, err = Fit(&Dataset{Records: make([]Record, 2), Labels: make([]int, 1)}, 10, 0.1)
	assert.Error(t, err)
}
