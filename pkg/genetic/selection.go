package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

// SelectParent runs a tournament among TournamentSize distinct individuals and returns the
// fittest one, the first drawn on ties.
func SelectParent(rng *rand.Rand, population Population) (*model.Schedule, error) {
	if len(population) < TournamentSize {
		return nil, fmt.Errorf("tournament needs at least %v individuals: %v", TournamentSize, len(population))
	}

	// Sample without replacement
	tournament := lo.Map(rng.Perm(len(population))[:TournamentSize], func(index int, _ int) *model.Schedule {
		return population[index]
	})

	return Population(tournament).Best(), nil
}
