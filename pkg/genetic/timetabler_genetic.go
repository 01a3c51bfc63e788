package genetic

import (
	"fmt"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"go.uber.org/zap"
)

type geneticTimetabler struct {
	config   Config
	logger   *zap.Logger
	observer Observer
}

type Option func(timetabler *geneticTimetabler)

func WithLogger(logger *zap.Logger) Option {
	return func(timetabler *geneticTimetabler) {
		timetabler.logger = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(timetabler *geneticTimetabler) {
		timetabler.observer = observer
	}
}

func NewGeneticTimetabler(config Config, options ...Option) Timetabler {
	timetabler := &geneticTimetabler{
		config: config,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(timetabler)
	}
	return timetabler
}

func (timetabler *geneticTimetabler) Build(modelInput model.ModelInput) (Result, error) {
	config := timetabler.config
	if err := config.Validate(); err != nil {
		return Result{}, err
	} else if len(modelInput.Rooms) == 0 {
		return Result{}, fmt.Errorf("at least one room must be provided")
	}

	rng := NewRand(config.Seed)
	courses, rooms := modelInput.Courses, modelInput.Rooms
	target := len(courses) // A perfect schedule places every course validly

	//** Initialize population
	population, tally := InitializePopulation(rng, config.PopulationSize, courses, config.TotalSlots)
	history := make([]GenerationStats, 0, config.Generations)
	bestSoFar := 0

	for generation := range config.Generations {
		//** Evaluate population
		Evaluate(population, rooms, config.Parallel)

		best := population.Best()
		bestSoFar = max(bestSoFar, best.Score())
		stats := GenerationStats{
			Generation: generation,
			Best:       best.Score(),
			Mean:       population.MeanScore(),
			BestSoFar:  bestSoFar,
		}
		history = append(history, stats)
		timetabler.observeGeneration(stats)

		timetabler.logger.Debug("generation evaluated",
			zap.Int("generation", generation),
			zap.Int("best", stats.Best),
			zap.Float64("mean", stats.Mean),
		)

		//** Check early termination
		if perfect, ok := population.Perfect(target); ok {
			result := Result{
				Best:        perfect,
				Generations: generation + 1,
				Perfect:     true,
				History:     history,
				Tally:       tally,
			}
			timetabler.finish(result)
			return result, nil
		}

		//** Breed next generation
		next := make(Population, 0, config.PopulationSize)
		for len(next) < config.PopulationSize {
			parent1, err := SelectParent(rng, population)
			if err != nil {
				return Result{}, err
			}
			parent2, err := SelectParent(rng, population)
			if err != nil {
				return Result{}, err
			}

			child, crossoverTally := Crossover(rng, parent1, parent2, config.CrossoverPoints)
			tally.Add(crossoverTally)
			tally.Add(Mutate(rng, child, config.TotalSlots, config.MutationChance))
			child.ComputeScore(rooms)

			next = append(next, child)
		}
		population = next
	}

	best := population.Best()
	result := Result{
		Best:        best,
		Generations: config.Generations,
		Perfect:     best.Score() == target,
		History:     history,
		Tally:       tally,
	}
	timetabler.finish(result)
	return result, nil
}

func (timetabler *geneticTimetabler) Verify(schedule *model.Schedule, modelInput model.ModelInput) bool {
	return model.Verify(schedule, modelInput, timetabler.config.TotalSlots)
}

func (timetabler *geneticTimetabler) observeGeneration(stats GenerationStats) {
	if timetabler.observer != nil {
		timetabler.observer.ObserveGeneration(stats)
	}
}

func (timetabler *geneticTimetabler) finish(result Result) {
	timetabler.logger.Info("run finished",
		zap.Int("score", result.Best.Score()),
		zap.Int("generations", result.Generations),
		zap.Bool("perfect", result.Perfect),
		zap.Int("dropped", result.Tally.Dropped),
	)
	if timetabler.observer != nil {
		timetabler.observer.ObserveRun(result)
	}
}
