package genetic

import "github.com/limaJavier/genetic-timetabling/pkg/model"

// Evaluate scores every individual against rooms
func Evaluate(population Population, rooms []model.Room, parallel bool) {
	if !parallel {
		for _, schedule := range population {
			schedule.ComputeScore(rooms)
		}
		return
	}

	// Individuals are independent, so each one is scored on its own goroutine
	scored := make(chan struct{})
	for _, schedule := range population {
		go func(schedule *model.Schedule) {
			schedule.ComputeScore(rooms)
			scored <- struct{}{}
		}(schedule)
	}

	for range population {
		<-scored
	}
}
