package model

import (
	"slices"

	"github.com/samber/lo"
)

// Schedule is a candidate solution: a partial injective mapping from course to slot.
//
// The zero value is not usable, use NewSchedule.
type Schedule struct {
	courses    []CourseSection   // Scheduled courses in assignment order
	assignment map[uint64]int    // Course id to slot
	slots      [][]CourseSection // Occupants per slot, kept in lockstep with assignment
	score      int
	scored     bool // Whether score reflects the current structure
}

func NewSchedule() *Schedule {
	return &Schedule{
		courses:    make([]CourseSection, 0),
		assignment: make(map[uint64]int),
		slots:      make([][]CourseSection, 0),
	}
}

// Assign schedules course at slot. Distinct courses may share the same slot.
func (schedule *Schedule) Assign(course CourseSection, slot int) error {
	if slot < 0 {
		return SlotRangeError{Slot: slot}
	}
	if current, ok := schedule.assignment[course.Id]; ok {
		return DuplicateAssignmentError{Course: course, Slot: current}
	}

	// Slots are allocated lazily and never shrink
	for len(schedule.slots) <= slot {
		schedule.slots = append(schedule.slots, make([]CourseSection, 0))
	}

	if lo.ContainsBy(schedule.slots[slot], func(other CourseSection) bool { return other.Id == course.Id }) {
		return SlotConflictError{Course: course, Slot: slot}
	}

	schedule.slots[slot] = append(schedule.slots[slot], course)
	schedule.assignment[course.Id] = slot
	schedule.courses = append(schedule.courses, course)
	schedule.scored = false
	return nil
}

// Place attempts to assign course at slot and reports the outcome instead of failing
func (schedule *Schedule) Place(course CourseSection, slot int) Placement {
	if err := schedule.Assign(course, slot); err != nil {
		return Placement{Course: course, Slot: slot, Outcome: Dropped, Err: err}
	}
	return Placement{Course: course, Slot: slot, Outcome: Scheduled}
}

// Unassign removes course from the schedule. It returns false if the course was not scheduled.
func (schedule *Schedule) Unassign(course CourseSection) bool {
	slot, ok := schedule.assignment[course.Id]
	if !ok {
		return false
	}

	schedule.slots[slot] = slices.DeleteFunc(schedule.slots[slot], func(other CourseSection) bool { return other.Id == course.Id })
	schedule.courses = slices.DeleteFunc(schedule.courses, func(other CourseSection) bool { return other.Id == course.Id })
	delete(schedule.assignment, course.Id)
	schedule.scored = false
	return true
}

// SlotOf returns the slot assigned to course, if any
func (schedule *Schedule) SlotOf(course CourseSection) (int, bool) {
	slot, ok := schedule.assignment[course.Id]
	return slot, ok
}

// Courses returns the scheduled courses in assignment order
func (schedule *Schedule) Courses() []CourseSection {
	return slices.Clone(schedule.courses)
}

// Occupants returns the courses held by slot
func (schedule *Schedule) Occupants(slot int) []CourseSection {
	if slot < 0 || slot >= len(schedule.slots) {
		return nil
	}
	return slices.Clone(schedule.slots[slot])
}

// Slots returns the number of allocated slots
func (schedule *Schedule) Slots() int {
	return len(schedule.slots)
}

// Len returns the number of scheduled courses
func (schedule *Schedule) Len() int {
	return len(schedule.assignment)
}

// Assignment returns a copy of the course-id to slot mapping
func (schedule *Schedule) Assignment() map[uint64]int {
	assignment := make(map[uint64]int, len(schedule.assignment))
	for id, slot := range schedule.assignment {
		assignment[id] = slot
	}
	return assignment
}

func (schedule *Schedule) Score() int {
	return schedule.score
}

// Stale reports whether the schedule changed since the last ComputeScore call
func (schedule *Schedule) Stale() bool {
	return !schedule.scored
}

// RoomFor returns the room associated with slot. The mapping is a fixed round-robin over rooms
// and does not depend on the courses occupying the slot.
func RoomFor(slot int, rooms []Room) Room {
	return rooms[slot%len(rooms)]
}

// ComputeScore evaluates the schedule against rooms and stores the result.
//
// A course earns one point when its slot's room has enough seats and is a lab if the course
// requires one, plus one extra point when it shares the slot with some other course.
func (schedule *Schedule) ComputeScore(rooms []Room) int {
	score := 0
	for _, course := range schedule.courses {
		slot := schedule.assignment[course.Id]
		room := RoomFor(slot, rooms)

		if room.Seats < course.Duration {
			continue // Not enough seats
		}
		if course.RequiresLab && !room.IsLab {
			continue // Not a lab
		}
		if lo.SomeBy(schedule.slots[slot], func(other CourseSection) bool { return other.Id != course.Id }) {
			score++
		}
		score++
	}

	schedule.score = score
	schedule.scored = true
	return score
}
