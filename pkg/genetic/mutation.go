package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

// Mutate moves each scheduled course to a random slot with probability mutationChance. A course
// whose new placement fails stays unscheduled. The score is stale afterwards.
func Mutate(rng *rand.Rand, schedule *model.Schedule, totalSlots int, mutationChance float64) model.Tally {
	var tally model.Tally

	for _, course := range schedule.Courses() {
		if rng.Float64() >= mutationChance {
			continue
		}
		schedule.Unassign(course)
		tally.Record(schedule.Place(course, rng.IntN(totalSlots)))
	}

	return tally
}
