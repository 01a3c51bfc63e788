package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Suitable reports whether room can host course: enough seats and a lab when the course requires one
func Suitable(course CourseSection, room Room) bool {
	return room.Seats >= course.Duration && (!course.RequiresLab || room.IsLab)
}

// AllocateRooms looks for a conflict-free room for every scheduled course, slot by slot.
// It returns the chosen room id per course id. Scoring never depends on this allocation.
func AllocateRooms(schedule *Schedule, rooms []Room) (map[uint64]uint64, error) {
	allocation := make(map[uint64]uint64, schedule.Len())

	for slot, occupants := range schedule.slots {
		if len(occupants) == 0 {
			continue
		}

		assignments, err := allocateSlot(occupants, rooms)
		if _, ok := err.(unassignableError); ok {
			return nil, unassignableError{slot: slot}
		} else if err != nil {
			return nil, err
		}

		for courseId, roomId := range assignments {
			allocation[courseId] = roomId
		}
	}

	return allocation, nil
}

func allocateSlot(courses []CourseSection, rooms []Room) (map[uint64]uint64, error) {
	neighbors := func(courseAny any, roomAny any) (bool, error) {
		return Suitable(courseAny.(CourseSection), roomAny.(Room)), nil
	}

	coursesAny := lo.Map(courses, func(course CourseSection, _ int) any { return course })
	roomsAny := lo.Map(rooms, func(room Room, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(coursesAny, roomsAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()

	// Check the matching covers every course
	if len(matching) < len(courses) {
		return nil, unassignableError{}
	}

	assignments := make(map[uint64]uint64, len(courses))
	for _, edge := range matching {
		courseIndex, roomIndex := edge.Node1, edge.Node2-len(courses)
		assignments[courses[courseIndex].Id] = rooms[roomIndex].Id
	}
	return assignments, nil
}
