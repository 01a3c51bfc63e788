package model

import "github.com/samber/lo"

// Verify checks the structural invariants of a schedule built for modelInput over totalSlots slots
func Verify(schedule *Schedule, modelInput ModelInput, totalSlots int) bool {
	known := lo.SliceToMap(modelInput.Courses, func(course CourseSection) (uint64, bool) { return course.Id, true })

	//** Count appearances per course across every slot
	appearances := make(map[uint64]int)
	for slot, occupants := range schedule.slots {
		for _, course := range occupants {
			assigned, ok := schedule.assignment[course.Id]
			// Check that:
			// - The course belongs to the input
			// - The course is recorded at this very slot
			if !known[course.Id] || !ok || assigned != slot {
				return false
			}
			appearances[course.Id]++
		}
	}

	for id, slot := range schedule.assignment {
		// Check that:
		// - Every assigned course appears exactly once
		// - Its slot lies within the slot range
		if appearances[id] != 1 || slot < 0 || slot >= totalSlots {
			return false
		}
	}

	if len(schedule.courses) != len(schedule.assignment) {
		return false
	}

	// The score can only be trusted right after an evaluation
	if !schedule.Stale() && (schedule.score < 0 || schedule.score > 2*schedule.Len()) {
		return false
	}
	return true
}
