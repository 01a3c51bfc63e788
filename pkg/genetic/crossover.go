package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

// Crossover builds a child from two parents. Every course of parent1 inherits parent1's slot when
// the mask bucket course.Id mod |parent1| is set, and parent2's slot otherwise. Buckets are shared
// by courses whose ids collide modulo |parent1|.
func Crossover(rng *rand.Rand, parent1, parent2 *model.Schedule, crossoverPoints int) (*model.Schedule, model.Tally) {
	child := model.NewSchedule()
	var tally model.Tally

	courses := parent1.Courses()
	size := len(courses)
	if size == 0 {
		return child, tally
	}

	// Repeated draws land on the same position, so fewer than crossoverPoints bits may be set
	mask := make([]bool, size)
	for range crossoverPoints {
		mask[rng.IntN(size)] = true
	}

	for _, course := range courses {
		slot, _ := parent1.SlotOf(course)
		if !mask[course.Id%uint64(size)] {
			// Fall back to parent1 when parent2 left the course unscheduled
			if other, ok := parent2.SlotOf(course); ok {
				slot = other
			}
		}
		tally.Record(child.Place(course, slot))
	}

	return child, tally
}
