package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Training hyperparameters. Batch gradient descent is plenty for a dataset
// this size and keeps the trainer dependency-free.
const (
	DefaultEpochs       = 300
	DefaultLearningRate = 0.5
)

// Fit builds the standardize+one-hot pipeline from the dataset and fits
// logistic-regression weights with batch gradient descent.
func Fit(ds *Dataset, epochs int, learningRate float64) (*Model, error) {
	if ds == nil || len(ds.Records) == 0 {
		return nil, errors.New("fit: empty dataset")
	}
	if len(ds.Records) != len(ds.Labels) {
		return nil, fmt.Errorf("fit: %d records but %d labels", len(ds.Records), len(ds.Labels))
	}

	pipe := Pipeline{}
	for _, col := range DatasetColumns {
		if _, ok := ds.Records[0].numericValue(col); ok {
			pipe.Numeric = append(pipe.Numeric, fitNumeric(ds.Records, col))
			continue
		}
		pipe.Categorical = append(pipe.Categorical, fitCategorical(ds.Records, col))
	}
	pipe.Weights = make([]float64, pipe.width())

	// expand every record once; vectorize cannot fail here because the
	// vocabularies were just derived from these records
	rows := make([][]float64, len(ds.Records))
	for i, rec := range ds.Records {
		vec, err := pipe.vectorize(rec)
		if err != nil {
			return nil, err
		}
		rows[i] = vec
	}

	n := float64(len(rows))
	grad := make([]float64, len(pipe.Weights))
	for epoch := 0; epoch < epochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		gradBias := 0.0
		for i, row := range rows {
			z := pipe.Bias
			for j, w := range pipe.Weights {
				z += w * row[j]
			}
			delta := sigmoid(z) - float64(ds.Labels[i])
			for j, x := range row {
				grad[j] += delta * x
			}
			gradBias += delta
		}
		for j := range pipe.Weights {
			pipe.Weights[j] -= learningRate * grad[j] / n
		}
		pipe.Bias -= learningRate * gradBias / n
	}

	return &Model{pipe: pipe, columns: append([]string{}, DatasetColumns...)}, nil
}

func fitNumeric(records []Record, col string) NumericFeature {
	sum := 0.0
	for _, rec := range records {
		v, _ := rec.numericValue(col)
		sum += v
	}
	mean := sum / float64(len(records))
	varSum := 0.0
	for _, rec := range records {
		v, _ := rec.numericValue(col)
		varSum += (v - mean) * (v - mean)
	}
	return NumericFeature{Name: col, Mean: mean, Std: math.Sqrt(varSum / float64(len(records)))}
}

func fitCategorical(records []Record, col string) CategoricalFeature {
	seen := map[string]bool{}
	for _, rec := range records {
		v, _ := rec.categoricalValue(col)
		seen[v] = true
	}
	cats := make([]string, 0, len(seen))
	for v := range seen {
		cats = append(cats, v)
	}
	sort.Strings(cats)
	return CategoricalFeature{Name: col, Categories: cats}
}

// Accuracy scores the model against a labeled dataset at the 0.5 cutoff.
func (m *Model) Accuracy(ds *Dataset) (float64, error) {
	if len(ds.Records) == 0 {
		return 0, errors.New("accuracy: empty dataset")
	}
	correct := 0
	for i, rec := range ds.Records {
		p, err := m.Predict(rec)
		if err != nil {
			return 0, err
		}
		pred := 0
		if p > 0.5 {
			pred = 1
		}
		if pred == ds.Labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(ds.Records)), nil
}
