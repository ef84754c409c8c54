package domain

import "time"

// FileReport is the outcome of processing one file in a batch.
type FileReport struct {
	// Name is the input file name.
	Name string

	// Output is the path of the written result.
	Output string

	// Headings is the number of outline entries produced.
	Headings int

	// Err describes the failure that triggered the fallback result.
	// Empty on success.
	Err string

	// Duration is how long the file took.
	Duration time.Duration
}

// Failed reports whether the file fell back.
func (f FileReport) Failed() bool {
	return f.Err != ""
}

// BatchReport summarises an outline batch.
type BatchReport struct {
	// RunID identifies the recorded run, if any.
	RunID string

	// Files are the per-file outcomes in input order.
	Files []FileReport

	// Duration is the wall time of the whole batch.
	Duration time.Duration
}

// Processed returns the number of files that produced a real outline.
func (r BatchReport) Processed() int {
	var n int
	for _, f := range r.Files {
		if !f.Failed() {
			n++
		}
	}
	return n
}

// Failed returns the number of files that fell back.
func (r BatchReport) Failed() int {
	return len(r.Files) - r.Processed()
}
