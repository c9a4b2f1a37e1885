package registry

import "github.com/spachava753/benchreg/internal/models"

// Registry is an ordered, immutable collection of resolved task
// definitions keyed by unique name. Order matches the benchmark source
// with the template excluded.
type Registry struct {
	order []string
	tasks map[string]models.TaskDefinition
}

func newRegistry(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		order: make([]string, 0, capacity),
		tasks: make(map[string]models.TaskDefinition, capacity),
	}
}

// add appends a definition. The loader guarantees name uniqueness before
// calling it.
func (r *Registry) add(def models.TaskDefinition) {
	r.order = append(r.order, def.Name)
	r.tasks[def.Name] = def
}

// Len returns the number of tasks in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the task names in source order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get looks a task up by name.
func (r *Registry) Get(name string) (models.TaskDefinition, bool) {
	def, ok := r.tasks[name]
	return def, ok
}

// Tasks returns all definitions in source order.
func (r *Registry) Tasks() []models.TaskDefinition {
	out := make([]models.TaskDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tasks[name])
	}
	return out
}

// FilterEnabled returns a new registry holding only the tasks whose
// resolved enabled flag is true, preserving order. The receiver is left
// untouched.
func (r *Registry) FilterEnabled() *Registry {
	out := newRegistry(len(r.order))
	for _, name := range r.order {
		if def := r.tasks[name]; def.Enabled {
			out.add(def)
		}
	}
	return out
}
