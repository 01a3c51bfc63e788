package genetic

import "github.com/limaJavier/genetic-timetabling/pkg/model"

type Timetabler interface {
	Build(
		modelInput model.ModelInput,
	) (result Result, err error)

	Verify(
		schedule *model.Schedule,
		modelInput model.ModelInput,
	) bool
}

type GenerationStats struct {
	Generation int
	Best       int
	Mean       float64
	BestSoFar  int // Highest score seen up to and including this generation
}

type Result struct {
	Best        *model.Schedule
	Generations int  // Generations evaluated before returning
	Perfect     bool // Whether Best scored exactly one point per course
	History     []GenerationStats
	Tally       model.Tally // Placements made by every operator during the run
}

// Observer is notified as a run progresses
type Observer interface {
	ObserveGeneration(stats GenerationStats)
	ObserveRun(result Result)
}
