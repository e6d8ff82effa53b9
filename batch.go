package mpsent

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ScoreColumns names the columns of a ScoreBatch matrix.
var ScoreColumns = []string{TagPositive, TagNegative, TagPolarity, TagSubjectivity}

// ScoreBatch scores each text and returns a len(texts)×4 matrix whose
// columns follow ScoreColumns. It returns nil when texts is empty.
func (d *Dictionary) ScoreBatch(texts []string, mode ScoreMode) *mat.Dense {
	if len(texts) == 0 {
		return nil
	}

	m := mat.NewDense(len(texts), len(ScoreColumns), nil)
	for i, text := range texts {
		s := d.ScoreText(text, mode)
		m.SetRow(i, []float64{s.Positive, s.Negative, s.Polarity, s.Subjectivity})
	}
	return m
}

// ColumnSummary describes one metric across a batch.
type ColumnSummary struct {
	Name   string
	Mean   float64
	StdDev float64 // population standard deviation
}

// Summarize returns the mean and standard deviation of every column of m,
// which is typically the result of ScoreBatch.
func Summarize(m *mat.Dense) []ColumnSummary {
	if m == nil {
		return nil
	}

	rows, cols := m.Dims()
	summaries := make([]ColumnSummary, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		name := ""
		if j < len(ScoreColumns) {
			name = ScoreColumns[j]
		}
		summaries[j] = ColumnSummary{
			Name:   name,
			Mean:   stat.Mean(col, nil),
			StdDev: math.Sqrt(stat.PopVariance(col, nil)),
		}
	}
	return summaries
}
