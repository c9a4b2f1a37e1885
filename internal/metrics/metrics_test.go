package metrics_test

import (
	"testing"

	"github.com/spachava753/benchreg/internal/metrics"
	"github.com/spachava753/benchreg/internal/models"
)

func TestIsPerformance(t *testing.T) {
	for _, name := range []string{"acc", "auc", "logloss", "f1", "mae", "mse", "rmse", "rmsle", "r2"} {
		if !metrics.IsPerformance(name) {
			t.Errorf("%s should be a performance metric", name)
		}
	}
	for _, name := range []string{"norm_score", "duration", "ACC", ""} {
		if metrics.IsPerformance(name) {
			t.Errorf("%s should not be a performance metric", name)
		}
	}
}

func TestInferProblemType(t *testing.T) {
	tests := []struct {
		metric string
		want   models.ProblemType
	}{
		{"acc", models.ProblemClassification},
		{"logloss", models.ProblemClassification},
		{"rmse", models.ProblemRegression},
		{"r2", models.ProblemRegression},
		{"norm_score", models.ProblemUnknown},
		{"", models.ProblemUnknown},
	}
	for _, tt := range tests {
		if got := metrics.InferProblemType(tt.metric); got != tt.want {
			t.Errorf("InferProblemType(%q) = %s, want %s", tt.metric, got, tt.want)
		}
	}
}
