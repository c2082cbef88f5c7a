// internal/batch/job.go
package batch

import "errors"

// ErrJobFailed is returned by Runner.Run in fail-fast mode once a job fails.
var ErrJobFailed = errors.New("batch job failed")

// Job is one operation to evaluate. Vector and Other hold untyped vector-likes
// exactly as decoded: two-element lists or {x, y} mappings.
type Job struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Op     string `json:"op" yaml:"op"`
	Vector any    `json:"vector" yaml:"vector"`
	Other  any    `json:"other,omitempty" yaml:"other,omitempty"`
	// Scalar is the factor for scale_by, div and multiply, and the length for
	// scale_to and truncate.
	Scalar any `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	// Angle is in degrees, for rotate and trig.
	Angle any `json:"angle,omitempty" yaml:"angle,omitempty"`
	// Item is the index or key for get.
	Item any `json:"item,omitempty" yaml:"item,omitempty"`

	AbsTol *float64 `json:"abs_tol,omitempty" yaml:"abs_tol,omitempty"`
	RelTol *float64 `json:"rel_tol,omitempty" yaml:"rel_tol,omitempty"`
	RelTo  []any    `json:"rel_to,omitempty" yaml:"rel_to,omitempty"`
}

// Result is the outcome of a Job. Exactly one of Value and Error is set.
type Result struct {
	ID    string `json:"id"`
	Op    string `json:"op"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Failed reports whether the job produced an error.
func (r Result) Failed() bool {
	return r.Error != ""
}
