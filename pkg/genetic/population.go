package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

type Population []*model.Schedule

// InitializePopulation builds size random schedules. Courses that cannot be placed are left
// unscheduled and counted as dropped.
func InitializePopulation(rng *rand.Rand, size int, courses []model.CourseSection, totalSlots int) (Population, model.Tally) {
	population := make(Population, 0, size)
	var tally model.Tally

	for range size {
		schedule := model.NewSchedule()
		for _, course := range courses {
			tally.Record(schedule.Place(course, rng.IntN(totalSlots)))
		}
		population = append(population, schedule)
	}

	return population, tally
}

// Best returns the highest scoring individual, the first one on ties
func (population Population) Best() *model.Schedule {
	return lo.MaxBy(population, func(a, b *model.Schedule) bool {
		return a.Score() > b.Score()
	})
}

// Perfect returns the first individual whose score equals target
func (population Population) Perfect(target int) (*model.Schedule, bool) {
	return lo.Find(population, func(schedule *model.Schedule) bool {
		return schedule.Score() == target
	})
}

func (population Population) MeanScore() float64 {
	if len(population) == 0 {
		return 0
	}
	total := lo.SumBy(population, func(schedule *model.Schedule) int { return schedule.Score() })
	return float64(total) / float64(len(population))
}
