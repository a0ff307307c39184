package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// ErrSchemaMismatch is returned when an inference record diverges from the
// schema the pipeline was fit on (missing feature or unknown category).
var ErrSchemaMismatch = errors.New("schema_mismatch")

// NumericFeature holds the standardization stats for one numeric column.
type NumericFeature struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// CategoricalFeature holds the one-hot vocabulary for one categorical column.
type CategoricalFeature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// Pipeline is the serialized fitted scorer: standardize numerics, one-hot
// encode categoricals, then apply logistic-regression weights. Weights are
// ordered numeric features first, then each categorical vocabulary in turn.
type Pipeline struct {
	Numeric     []NumericFeature     `json:"numeric"`
	Categorical []CategoricalFeature `json:"categorical"`
	Weights     []float64            `json:"weights"`
	Bias        float64              `json:"bias"`
}

func (p *Pipeline) width() int {
	n := len(p.Numeric)
	for _, cf := range p.Categorical {
		n += len(cf.Categories)
	}
	return n
}

// vectorize expands a record into the pipeline's feature vector.
func (p *Pipeline) vectorize(rec Record) ([]float64, error) {
	vec := make([]float64, 0, p.width())
	for _, nf := range p.Numeric {
		v, ok := rec.numericValue(nf.Name)
		if !ok {
			return nil, fmt.Errorf("%w: missing numeric feature %q", ErrSchemaMismatch, nf.Name)
		}
		std := nf.Std
		if std == 0 {
			std = 1
		}
		vec = append(vec, (v-nf.Mean)/std)
	}
	for _, cf := range p.Categorical {
		v, ok := rec.categoricalValue(cf.Name)
		if !ok {
			return nil, fmt.Errorf("%w: missing categorical feature %q", ErrSchemaMismatch, cf.Name)
		}
		idx := -1
		for i, c := range cf.Categories {
			if c == v {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown %s value %q", ErrSchemaMismatch, cf.Name, v)
		}
		for i := range cf.Categories {
			if i == idx {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		}
	}
	return vec, nil
}

// Model is the loaded scoring artifact pair.
type Model struct {
	pipe    Pipeline
	columns []string
}

// Columns returns the ordered feature-column list the model was fit on.
func (m *Model) Columns() []string { return m.columns }

// Predict returns the attrition-risk probability for one record.
func (m *Model) Predict(rec Record) (float64, error) {
	vec, err := m.pipe.vectorize(rec)
	if err != nil {
		return 0, err
	}
	z := m.pipe.Bias
	for i, w := range m.pipe.Weights {
		z += w * vec[i]
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Load reads the fitted pipeline and the ordered feature-column list.
// Both files must exist and agree with each other; anything else is a
// startup failure for the caller.
func Load(modelPath, featuresPath string) (*Model, error) {
	var pipe Pipeline
	if err := readJSON(modelPath, &pipe); err != nil {
		return nil, err
	}
	var columns []string
	if err := readJSON(featuresPath, &columns); err != nil {
		return nil, err
	}
	m := &Model{pipe: pipe, columns: columns}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) validate() error {
	if len(m.pipe.Weights) != m.pipe.width() {
		return fmt.Errorf("%w: %d weights for %d features", ErrSchemaMismatch, len(m.pipe.Weights), m.pipe.width())
	}
	named := map[string]bool{}
	for _, nf := range m.pipe.Numeric {
		named[nf.Name] = true
	}
	for _, cf := range m.pipe.Categorical {
		if len(cf.Categories) == 0 {
			return fmt.Errorf("%w: categorical feature %q has no vocabulary", ErrSchemaMismatch, cf.Name)
		}
		named[cf.Name] = true
	}
	if len(m.columns) != len(named) {
		return fmt.Errorf("%w: column list has %d entries, pipeline has %d features", ErrSchemaMismatch, len(m.columns), len(named))
	}
	for _, c := range m.columns {
		if !named[c] {
			return fmt.Errorf("%w: column %q not known to the pipeline", ErrSchemaMismatch, c)
		}
	}
	return nil
}

// Save writes the artifact pair, creating parent directories as needed.
func (m *Model) Save(modelPath, featuresPath string) error {
	if err := writeJSON(modelPath, m.pipe); err != nil {
		return err
	}
	return writeJSON(featuresPath, m.columns)
}

func readJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, src any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}
