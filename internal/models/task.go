package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ProblemType classifies a task by the family of its primary metric.
type ProblemType string

const (
	ProblemClassification ProblemType = "classification"
	ProblemRegression     ProblemType = "regression"
	ProblemUnknown        ProblemType = "unknown"
)

// DatasetRef identifies the dataset a task runs against. OpenML task ids
// are numeric; other backends use string identifiers. The zero value means
// the record references no dataset at all.
type DatasetRef struct {
	ID   int64
	Name string
}

// IsZero reports whether the reference points at no dataset.
func (r DatasetRef) IsZero() bool {
	return r.ID == 0 && r.Name == ""
}

func (r DatasetRef) String() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != 0 {
		return strconv.FormatInt(r.ID, 10)
	}
	return ""
}

// UnmarshalYAML accepts either an integer or a string scalar.
func (r *DatasetRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("dataset reference must be an integer or a string")
	}
	switch value.Tag {
	case "!!int":
		id, err := strconv.ParseInt(value.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing dataset id %q: %w", value.Value, err)
		}
		r.ID = id
		r.Name = ""
	case "!!str":
		r.ID = 0
		r.Name = value.Value
	case "!!null":
		*r = DatasetRef{}
	default:
		return fmt.Errorf("dataset reference must be an integer or a string, got %s", value.Tag)
	}
	return nil
}

func (r DatasetRef) MarshalYAML() (any, error) {
	if r.Name != "" {
		return r.Name, nil
	}
	return r.ID, nil
}

func (r DatasetRef) MarshalJSON() ([]byte, error) {
	if r.Name != "" {
		return json.Marshal(r.Name)
	}
	return json.Marshal(r.ID)
}

// MetricList is an ordered list of metric names. The first entry is the
// primary optimization target; later entries are informational. Benchmark
// files may spell a single metric as a bare scalar.
type MetricList []string

// UnmarshalYAML accepts a string scalar or a sequence of strings. Either
// form yields a non-nil list, so a decoded MetricList is distinguishable
// from an absent one.
func (m *MetricList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*m = MetricList{}
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("metric: %w", err)
		}
		*m = MetricList{s}
	case yaml.SequenceNode:
		out := make(MetricList, 0, len(value.Content))
		for _, entry := range value.Content {
			var s string
			if err := entry.Decode(&s); err != nil {
				return fmt.Errorf("metric entry: %w", err)
			}
			out = append(out, s)
		}
		*m = out
	default:
		return fmt.Errorf("metric must be a string or a sequence of strings")
	}
	return nil
}

// RawTask is a benchmark record as written, before default-merge. Field
// presence is significant: a nil field means the key was absent from the
// record and the template (or constraint) value applies.
type RawTask struct {
	Name              *string
	Enabled           *bool
	OpenMLTaskID      *DatasetRef
	Metric            MetricList
	Folds             *int
	MaxRuntimeSeconds *int
	Cores             *int
	MaxMemSizeMB      *int
	EC2InstanceType   *string

	// Extra holds keys the loader does not recognize, passed through
	// unvalidated for forward compatibility.
	Extra map[string]any
}

// UnmarshalYAML decodes known keys into typed fields and collects
// everything else into Extra.
func (t *RawTask) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("task record must be a mapping")
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("task record key: %w", err)
		}

		var err error
		switch key {
		case "name":
			err = decodeScalar(valNode, &t.Name)
		case "enabled":
			err = decodeScalar(valNode, &t.Enabled)
		case "openml_task_id":
			err = decodeScalar(valNode, &t.OpenMLTaskID)
		case "metric":
			var m MetricList
			if err = valNode.Decode(&m); err == nil {
				t.Metric = m
			}
		case "folds":
			err = decodeScalar(valNode, &t.Folds)
		case "max_runtime_seconds":
			err = decodeScalar(valNode, &t.MaxRuntimeSeconds)
		case "cores":
			err = decodeScalar(valNode, &t.Cores)
		case "max_mem_size_mb":
			err = decodeScalar(valNode, &t.MaxMemSizeMB)
		case "ec2_instance_type":
			err = decodeScalar(valNode, &t.EC2InstanceType)
		default:
			var v any
			if err = valNode.Decode(&v); err == nil {
				if t.Extra == nil {
					t.Extra = make(map[string]any)
				}
				t.Extra[key] = v
			}
		}
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

// decodeScalar decodes a node into a fresh value and points dst at it. An
// explicit null leaves dst nil, same as an absent key.
func decodeScalar[T any](node *yaml.Node, dst **T) error {
	if node.Tag == "!!null" {
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

// TaskDefinition is a fully resolved task record. Instances are never
// mutated after the loader returns them.
type TaskDefinition struct {
	Name              string
	Enabled           bool
	OpenMLTaskID      DatasetRef
	Metrics           []string
	ProblemType       ProblemType
	Folds             int
	MaxRuntimeSeconds int
	Cores             int
	MaxMemSizeMB      int
	EC2InstanceType   string
	Extra             map[string]any
}

// PrimaryMetric returns the optimization target, or "" when the record
// declares no metrics.
func (t TaskDefinition) PrimaryMetric() string {
	if len(t.Metrics) == 0 {
		return ""
	}
	return t.Metrics[0]
}

// MarshalYAML emits the record in benchmark-file form. Derived fields such
// as the problem type are omitted so that re-loading the output resolves
// to the same definition.
func (t TaskDefinition) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(key string, val any) error {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(val); err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
		return nil
	}

	fields := []struct {
		key  string
		val  any
		omit bool
	}{
		{"name", t.Name, false},
		{"enabled", t.Enabled, false},
		{"openml_task_id", t.OpenMLTaskID, t.OpenMLTaskID.IsZero()},
		{"metric", []string(t.Metrics), false},
		{"folds", t.Folds, false},
		{"max_runtime_seconds", t.MaxRuntimeSeconds, false},
		{"cores", t.Cores, t.Cores <= 0},
		{"max_mem_size_mb", t.MaxMemSizeMB, false},
		{"ec2_instance_type", t.EC2InstanceType, t.EC2InstanceType == ""},
	}
	for _, f := range fields {
		if f.omit {
			continue
		}
		if err := add(f.key, f.val); err != nil {
			return nil, err
		}
	}
	for _, key := range sortedKeys(t.Extra) {
		if err := add(key, t.Extra[key]); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// MarshalJSON merges the known fields with the preserved extra keys. The
// problem type is included since runner-side consumers select their metric
// mapping by it.
func (t TaskDefinition) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(t.Extra)+10)
	for k, v := range t.Extra {
		m[k] = v
	}
	m["name"] = t.Name
	m["enabled"] = t.Enabled
	if !t.OpenMLTaskID.IsZero() {
		m["openml_task_id"] = t.OpenMLTaskID
	}
	m["metric"] = t.Metrics
	m["folds"] = t.Folds
	m["max_runtime_seconds"] = t.MaxRuntimeSeconds
	if t.Cores > 0 {
		m["cores"] = t.Cores
	}
	m["max_mem_size_mb"] = t.MaxMemSizeMB
	if t.EC2InstanceType != "" {
		m["ec2_instance_type"] = t.EC2InstanceType
	}
	if t.ProblemType != "" {
		m["problem_type"] = t.ProblemType
	}
	return json.Marshal(m)
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
