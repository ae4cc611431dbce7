package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the recorded result of one delivery attempt sequence.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Outcome records the result of processing a single recipient.
// Error is empty exactly when Status is StatusSuccess.
type Outcome struct {
	Email     string    `csv:"email"`
	Name      string    `csv:"name"`
	Status    Status    `csv:"status"`
	Timestamp time.Time `csv:"timestamp"`
	Error     string    `csv:"error"`
}

// Report is the ordered sequence of outcomes for one run, plus summary
// counters. Outcomes are never mutated after being added.
type Report struct {
	RunID     string
	StartedAt time.Time
	Outcomes  []Outcome
	Total     int
	Succeeded int
	Failed    int
}

// New creates an empty report stamped with a fresh run ID.
func New(startedAt time.Time) *Report {
	return &Report{
		RunID:     uuid.NewString()[:8],
		StartedAt: startedAt,
	}
}

// Add appends an outcome and updates the summary counters.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Total++
	if o.Status == StatusSuccess {
		r.Succeeded++
	} else {
		r.Failed++
	}
}

// Filename returns the report file name for a run started at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("send_report_%s.csv", t.Format("20060102_150405"))
}
