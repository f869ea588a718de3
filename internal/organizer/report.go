package organizer

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Stage names the step of the organize workflow a failure happened in.
type Stage string

const (
	StageDreams Stage = "dreams"
	StageMove   Stage = "move"
)

// Failure records one note that could not be fully organized.
type Failure struct {
	Note  string
	Stage Stage
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Note, f.Stage, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Report summarizes an organize run.
type Report struct {
	// Total is the number of unorganized notes found.
	Total        int
	Moved        int
	DreamsCopied int
	Failures     []Failure
}

// DreamFailures counts notes whose dreams could not be copied.
func (r Report) DreamFailures() int {
	n := 0
	for _, f := range r.Failures {
		if f.Stage == StageDreams {
			n++
		}
	}
	return n
}

// Err combines every failure, or returns nil when the run was clean.
func (r Report) Err() error {
	var result *multierror.Error
	for _, f := range r.Failures {
		result = multierror.Append(result, f)
	}
	return result.ErrorOrNil()
}

// PlanItem describes what organizing would do to a single note.
type PlanItem struct {
	Note string
	// Target is the week folder the note moves into. Empty when Err is set.
	Target string
	// Journal is the year journal receiving the note's dreams, if any.
	Journal   string
	HasDreams bool
	Err       error
}
