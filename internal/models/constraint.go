package models

// Constraint is a named resource profile supplying fallback values beneath
// a benchmark's own template: a field is consulted only when neither the
// record nor the template set it. Constraints carry resource budgets, never
// identity or metrics.
type Constraint struct {
	Name              string  `toml:"-"`
	Folds             *int    `toml:"folds"`
	MaxRuntimeSeconds *int    `toml:"max_runtime_seconds"`
	Cores             *int    `toml:"cores"`
	MaxMemSizeMB      *int    `toml:"max_mem_size_mb"`
	MaxMemSize        string  `toml:"max_mem_size"` // human-readable form, e.g. "32G"; converted at load
	EC2InstanceType   *string `toml:"ec2_instance_type"`
}
