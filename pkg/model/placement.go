package model

type Outcome int

const (
	Scheduled Outcome = iota
	Dropped
)

func (outcome Outcome) String() string {
	if outcome == Scheduled {
		return "scheduled"
	}
	return "dropped"
}

// Placement is the result of a single attempt to put a course into a slot
type Placement struct {
	Course  CourseSection
	Slot    int
	Outcome Outcome
	Err     error // Cause of the drop, nil when scheduled
}

// Tally counts placement outcomes over one or more operations
type Tally struct {
	Scheduled int
	Dropped   int
}

func (tally *Tally) Record(placement Placement) {
	if placement.Outcome == Scheduled {
		tally.Scheduled++
	} else {
		tally.Dropped++
	}
}

func (tally *Tally) Add(other Tally) {
	tally.Scheduled += other.Scheduled
	tally.Dropped += other.Dropped
}
