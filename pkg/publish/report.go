package publish

import (
	"time"

	"github.com/google/uuid"
)

// Report tallies a publish batch.
type Report struct {
	ID        uuid.UUID `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}

// NewReport returns an empty report with a fresh ID.
func NewReport() Report {
	return Report{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}

// Record adds one outcome to the tally.
func (r *Report) Record(outcome Outcome) {
	r.Attempted++
	if outcome.Succeeded {
		r.Succeeded++
	} else {
		r.Failed++
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

// AllFailed reports whether every attempted publish failed. An empty
// batch did not fail.
func (r Report) AllFailed() bool {
	return r.Attempted > 0 && r.Failed == r.Attempted
}
