package domain

import "time"

// RunKind identifies which pipeline produced a run.
type RunKind string

// Run kinds.
const (
	RunKindOutline    RunKind = "outline"
	RunKindCollection RunKind = "collection"
)

// Run is a recorded execution of a pipeline.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// Kind is the pipeline that ran.
	Kind RunKind

	// Input is the file or directory that was processed.
	Input string

	// Documents is how many documents were processed successfully.
	Documents int

	// Failures is how many documents fell back.
	Failures int

	// Result is the JSON result of the run (collection result or outline summary).
	Result []byte

	// StartedAt is when the run started.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}
