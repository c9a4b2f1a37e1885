// Package metrics fixes the set of metric names eligible as a task's
// primary optimization target. The performance-vs-informational split is
// an external convention of the benchmark definitions, not a structural
// marker in the data, so the sets are hard-coded here.
package metrics

import "github.com/spachava753/benchreg/internal/models"

var classification = map[string]struct{}{
	"acc":     {},
	"auc":     {},
	"logloss": {},
	"f1":      {},
}

var regression = map[string]struct{}{
	"mae":   {},
	"mse":   {},
	"rmse":  {},
	"rmsle": {},
	"r2":    {},
}

// IsPerformance reports whether name may serve as a primary metric.
func IsPerformance(name string) bool {
	if _, ok := classification[name]; ok {
		return true
	}
	_, ok := regression[name]
	return ok
}

// InferProblemType returns the problem type implied by a primary metric
// name, or ProblemUnknown when the name belongs to neither family.
func InferProblemType(primary string) models.ProblemType {
	if _, ok := classification[primary]; ok {
		return models.ProblemClassification
	}
	if _, ok := regression[primary]; ok {
		return models.ProblemRegression
	}
	return models.ProblemUnknown
}
