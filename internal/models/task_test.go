package models_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/spachava753/benchreg/internal/models"
)

func TestRawTaskUnmarshal(t *testing.T) {
	doc := `
name: iris
enabled: true
openml_task_id: 59
metric: [acc, logloss]
folds: 2
max_runtime_seconds: 60
cores: 2
max_mem_size_mb: -1
ec2_instance_type: m5.large
description: classic toy dataset
quality: 0.97
`
	var raw models.RawTask
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if raw.Name == nil || *raw.Name != "iris" {
		t.Errorf("name = %v", raw.Name)
	}
	if raw.Enabled == nil || !*raw.Enabled {
		t.Errorf("enabled = %v", raw.Enabled)
	}
	if raw.OpenMLTaskID == nil || raw.OpenMLTaskID.ID != 59 {
		t.Errorf("openml_task_id = %v", raw.OpenMLTaskID)
	}
	if len(raw.Metric) != 2 || raw.Metric[0] != "acc" {
		t.Errorf("metric = %v", raw.Metric)
	}
	if raw.Folds == nil || *raw.Folds != 2 {
		t.Errorf("folds = %v", raw.Folds)
	}
	if raw.EC2InstanceType == nil || *raw.EC2InstanceType != "m5.large" {
		t.Errorf("ec2_instance_type = %v", raw.EC2InstanceType)
	}
	if raw.Extra["description"] != "classic toy dataset" {
		t.Errorf("extra description = %v", raw.Extra["description"])
	}
	if raw.Extra["quality"] != 0.97 {
		t.Errorf("extra quality = %v", raw.Extra["quality"])
	}
}

func TestRawTaskAbsentVsEmpty(t *testing.T) {
	var absent models.RawTask
	if err := yaml.Unmarshal([]byte(`name: a`), &absent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if absent.Metric != nil {
		t.Errorf("absent metric must stay nil, got %v", absent.Metric)
	}

	var empty models.RawTask
	if err := yaml.Unmarshal([]byte("name: a\nmetric: []"), &empty); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if empty.Metric == nil || len(empty.Metric) != 0 {
		t.Errorf("explicit empty metric must be non-nil and empty, got %v", empty.Metric)
	}
}

func TestRawTaskNullIsAbsent(t *testing.T) {
	var raw models.RawTask
	if err := yaml.Unmarshal([]byte("name: a\nfolds:"), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if raw.Folds != nil {
		t.Errorf("null folds must stay nil, got %v", raw.Folds)
	}
}

func TestDatasetRef(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want models.DatasetRef
	}{
		{"integer id", "59", models.DatasetRef{ID: 59}},
		{"string id", `"openml.org/t/59"`, models.DatasetRef{Name: "openml.org/t/59"}},
		{"zero means no dataset", "0", models.DatasetRef{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref models.DatasetRef
			if err := yaml.Unmarshal([]byte(tt.doc), &ref); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if ref != tt.want {
				t.Errorf("got %+v, want %+v", ref, tt.want)
			}
		})
	}

	if !(models.DatasetRef{}).IsZero() {
		t.Error("zero ref must report IsZero")
	}
	if (models.DatasetRef{ID: 59}).IsZero() {
		t.Error("non-zero ref must not report IsZero")
	}
}

func TestMetricListScalar(t *testing.T) {
	var m models.MetricList
	if err := yaml.Unmarshal([]byte(`acc`), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(m) != 1 || m[0] != "acc" {
		t.Errorf("scalar metric = %v", m)
	}
}

func TestTaskDefinitionYAMLRoundTrip(t *testing.T) {
	def := models.TaskDefinition{
		Name:              "iris",
		Enabled:           true,
		OpenMLTaskID:      models.DatasetRef{ID: 59},
		Metrics:           []string{"acc", "logloss"},
		ProblemType:       models.ProblemClassification,
		Folds:             2,
		MaxRuntimeSeconds: 60,
		Cores:             2,
		MaxMemSizeMB:      -1,
		Extra:             map[string]any{"description": "toy"},
	}

	out, err := yaml.Marshal(def)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var raw models.RawTask
	if err := yaml.Unmarshal(out, &raw); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if raw.Name == nil || *raw.Name != "iris" {
		t.Errorf("name lost in round trip: %v", raw.Name)
	}
	if raw.OpenMLTaskID == nil || raw.OpenMLTaskID.ID != 59 {
		t.Errorf("dataset ref lost in round trip: %v", raw.OpenMLTaskID)
	}
	if raw.MaxMemSizeMB == nil || *raw.MaxMemSizeMB != -1 {
		t.Errorf("mem size lost in round trip: %v", raw.MaxMemSizeMB)
	}
	if raw.Extra["description"] != "toy" {
		t.Errorf("extra lost in round trip: %v", raw.Extra)
	}
}

func TestPrimaryMetric(t *testing.T) {
	def := models.TaskDefinition{Metrics: []string{"auc", "acc"}}
	if def.PrimaryMetric() != "auc" {
		t.Errorf("primary = %s", def.PrimaryMetric())
	}
	if (models.TaskDefinition{}).PrimaryMetric() != "" {
		t.Error("empty metrics must yield empty primary")
	}
}
