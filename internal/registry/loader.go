// Package registry resolves ordered benchmark task records into a
// validated, immutable registry. The first record of a benchmark is its
// default template; every other record inherits any field it omits from
// the template, field by field. Loading either returns a fully validated
// registry or fails atomically with a models.ValidationError.
package registry

import (
	"fmt"

	"github.com/spachava753/benchreg/internal/metrics"
	"github.com/spachava753/benchreg/internal/models"
)

// Loader resolves raw benchmark records. The zero value is usable; it is
// a pure transform over its input and safe for concurrent use.
type Loader struct {
	// Constraint optionally supplies fallback resource values consulted
	// when neither the record nor the template sets a field.
	Constraint *models.Constraint
}

// NewLoader creates a loader with no constraint profile.
func NewLoader() *Loader {
	return &Loader{}
}

// Load treats the first record as the default template, merges every
// subsequent record against it, validates the result, and returns the
// registry in input order keyed by unique name.
func (l *Loader) Load(records []models.RawTask) (*Registry, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("benchmark defines no records")
	}

	tmpl := records[0]
	reg := newRegistry(len(records) - 1)

	for i, rec := range records[1:] {
		def, err := l.resolve(tmpl, rec, i+1)
		if err != nil {
			return nil, err
		}
		if _, exists := reg.Get(def.Name); exists {
			return nil, &models.ValidationError{
				Type:   models.ErrDuplicateName,
				Task:   def.Name,
				Detail: "name appears more than once",
			}
		}
		reg.add(def)
	}
	return reg, nil
}

// resolve merges one record against the template (and constraint) and
// validates the outcome. pos is the record's position in the source,
// used to identify unnamed records in errors.
func (l *Loader) resolve(tmpl, rec models.RawTask, pos int) (models.TaskDefinition, error) {
	var def models.TaskDefinition

	name := pick(rec.Name, tmpl.Name)
	if name == nil || *name == "" {
		return def, &models.ValidationError{
			Type:  models.ErrMissingField,
			Task:  fmt.Sprintf("#%d", pos),
			Field: "name",
		}
	}
	def.Name = *name

	// enabled is deliberately not inherited: the template's own
	// enabled=false only marks the template as non-executable.
	def.Enabled = true
	if rec.Enabled != nil {
		def.Enabled = *rec.Enabled
	}

	if ref := pick(rec.OpenMLTaskID, tmpl.OpenMLTaskID); ref != nil {
		def.OpenMLTaskID = *ref
	}

	m := rec.Metric
	if m == nil {
		m = tmpl.Metric
	}
	if m == nil {
		return def, l.missing(def.Name, "metric")
	}
	def.Metrics = make([]string, len(m))
	copy(def.Metrics, m)

	folds, err := l.resolveInt(def.Name, "folds", rec.Folds, tmpl.Folds, constraintField(l.Constraint, func(c *models.Constraint) *int { return c.Folds }))
	if err != nil {
		return def, err
	}
	def.Folds = folds

	runtime, err := l.resolveInt(def.Name, "max_runtime_seconds", rec.MaxRuntimeSeconds, tmpl.MaxRuntimeSeconds, constraintField(l.Constraint, func(c *models.Constraint) *int { return c.MaxRuntimeSeconds }))
	if err != nil {
		return def, err
	}
	def.MaxRuntimeSeconds = runtime

	cores := pick(rec.Cores, tmpl.Cores)
	if cores == nil {
		cores = constraintField(l.Constraint, func(c *models.Constraint) *int { return c.Cores })
	}
	if cores != nil {
		if *cores <= 0 {
			return def, l.invalidValue(def.Name, "cores", *cores)
		}
		def.Cores = *cores
	}

	def.MaxMemSizeMB = -1
	mem := pick(rec.MaxMemSizeMB, tmpl.MaxMemSizeMB)
	if mem == nil {
		mem = constraintField(l.Constraint, func(c *models.Constraint) *int { return c.MaxMemSizeMB })
	}
	if mem != nil {
		if *mem != -1 && *mem <= 0 {
			return def, l.invalidValue(def.Name, "max_mem_size_mb", *mem)
		}
		def.MaxMemSizeMB = *mem
	}

	instance := pick(rec.EC2InstanceType, tmpl.EC2InstanceType)
	if instance == nil {
		instance = constraintField(l.Constraint, func(c *models.Constraint) *string { return c.EC2InstanceType })
	}
	if instance != nil {
		def.EC2InstanceType = *instance
	}

	def.Extra = mergeExtra(tmpl.Extra, rec.Extra)

	if def.Enabled {
		if len(def.Metrics) == 0 {
			return def, &models.ValidationError{
				Type:   models.ErrInvalidMetric,
				Task:   def.Name,
				Field:  "metric",
				Detail: "enabled task declares no metrics",
			}
		}
		if primary := def.PrimaryMetric(); !metrics.IsPerformance(primary) {
			return def, &models.ValidationError{
				Type:   models.ErrInvalidMetric,
				Task:   def.Name,
				Field:  "metric",
				Detail: fmt.Sprintf("%q is not a recognized performance metric", primary),
			}
		}
	}
	def.ProblemType = metrics.InferProblemType(def.PrimaryMetric())

	return def, nil
}

// resolveInt merges a required positive-integer field across the three
// layers: record, template, constraint.
func (l *Loader) resolveInt(task, field string, rec, tmpl, constraint *int) (int, error) {
	v := pick(rec, tmpl)
	if v == nil {
		v = constraint
	}
	if v == nil {
		return 0, l.missing(task, field)
	}
	if *v <= 0 {
		return 0, l.invalidValue(task, field, *v)
	}
	return *v, nil
}

func (l *Loader) missing(task, field string) error {
	return &models.ValidationError{Type: models.ErrMissingField, Task: task, Field: field}
}

func (l *Loader) invalidValue(task, field string, v int) error {
	return &models.ValidationError{
		Type:   models.ErrInvalidValue,
		Task:   task,
		Field:  field,
		Detail: fmt.Sprintf("must be positive, got %d", v),
	}
}

// pick returns the override when explicitly present, else the base.
func pick[T any](override, base *T) *T {
	if override != nil {
		return override
	}
	return base
}

// constraintField safely projects a field out of an optional constraint.
func constraintField[T any](c *models.Constraint, f func(*models.Constraint) *T) *T {
	if c == nil {
		return nil
	}
	return f(c)
}

// mergeExtra unions the unrecognized keys of template and record, record
// winning per key. The result is freshly allocated; nil when both inputs
// are empty.
func mergeExtra(tmpl, rec map[string]any) map[string]any {
	if len(tmpl) == 0 && len(rec) == 0 {
		return nil
	}
	out := make(map[string]any, len(tmpl)+len(rec))
	for k, v := range tmpl {
		out[k] = v
	}
	for k, v := range rec {
		out[k] = v
	}
	return out
}
