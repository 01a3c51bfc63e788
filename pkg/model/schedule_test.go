package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mathA      = CourseSection{Id: 1, Name: "Math 101 - Class A", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"}
	physicsA   = CourseSection{Id: 2, Name: "Physics 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"}
	chemistryA = CourseSection{Id: 3, Name: "Chemistry 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"}
	historyA   = CourseSection{Id: 4, Name: "History 101 - Class A", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"}

	lectureRoom = Room{Id: 1, Name: "Room 1", Seats: 30, IsLab: false}
	labRoom     = Room{Id: 2, Name: "Room 2", Seats: 25, IsLab: true}
	rooms       = []Room{lectureRoom, labRoom}
)

func TestAssign(t *testing.T) {
	t.Run("Slots are allocated lazily", func(t *testing.T) {
		schedule := NewSchedule()

		require.NoError(t, schedule.Assign(mathA, 4))

		assert.Equal(t, 5, schedule.Slots())
		assert.Equal(t, []CourseSection{mathA}, schedule.Occupants(4))
		slot, ok := schedule.SlotOf(mathA)
		assert.True(t, ok)
		assert.Equal(t, 4, slot)
	})

	t.Run("Distinct courses may share a slot", func(t *testing.T) {
		schedule := NewSchedule()

		require.NoError(t, schedule.Assign(mathA, 1))
		require.NoError(t, schedule.Assign(historyA, 1))

		assert.Equal(t, []CourseSection{mathA, historyA}, schedule.Occupants(1))
		assert.Equal(t, 2, schedule.Len())
	})

	t.Run("Duplicate assignment", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 1))

		err := schedule.Assign(mathA, 3)

		var duplicate DuplicateAssignmentError
		require.ErrorAs(t, err, &duplicate)
		assert.Equal(t, 1, duplicate.Slot)
		assert.Empty(t, schedule.Occupants(3))
		assert.Equal(t, 1, schedule.Len())
	})

	t.Run("Slot conflict", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 2))
		// Forget the assignment while leaving the occupant behind to reach the identity check
		delete(schedule.assignment, mathA.Id)

		err := schedule.Assign(mathA, 2)

		var conflict SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, 2, conflict.Slot)
	})

	t.Run("Negative slot", func(t *testing.T) {
		schedule := NewSchedule()

		err := schedule.Assign(mathA, -1)

		assert.ErrorAs(t, err, &SlotRangeError{})
		assert.Zero(t, schedule.Len())
	})
}

func TestPlace(t *testing.T) {
	schedule := NewSchedule()
	var tally Tally

	tally.Record(schedule.Place(mathA, 0))
	tally.Record(schedule.Place(physicsA, 1))
	placement := schedule.Place(mathA, 2)
	tally.Record(placement)

	assert.Equal(t, Dropped, placement.Outcome)
	assert.ErrorAs(t, placement.Err, &DuplicateAssignmentError{})
	assert.Equal(t, Tally{Scheduled: 2, Dropped: 1}, tally)
}

func TestUnassign(t *testing.T) {
	schedule := NewSchedule()
	require.NoError(t, schedule.Assign(mathA, 0))
	require.NoError(t, schedule.Assign(historyA, 0))
	require.NoError(t, schedule.Assign(physicsA, 1))
	schedule.ComputeScore(rooms)

	assert.True(t, schedule.Unassign(mathA))
	assert.False(t, schedule.Unassign(mathA))

	assert.True(t, schedule.Stale())
	assert.Equal(t, []CourseSection{historyA}, schedule.Occupants(0))
	assert.Equal(t, []CourseSection{historyA, physicsA}, schedule.Courses())
	_, ok := schedule.SlotOf(mathA)
	assert.False(t, ok)

	// A removed course can be scheduled again
	assert.NoError(t, schedule.Assign(mathA, 3))
}

func TestComputeScore(t *testing.T) {
	t.Run("Valid placement earns one point", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 0))    // Room 1
		require.NoError(t, schedule.Assign(physicsA, 1)) // Room 2 (lab)

		assert.Equal(t, 2, schedule.ComputeScore(rooms))
		assert.Equal(t, 2, schedule.Score())
		assert.False(t, schedule.Stale())
	})

	t.Run("Lab courses in a non-lab room earn nothing", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(physicsA, 2)) // 2 mod 2 = Room 1

		assert.Equal(t, 0, schedule.ComputeScore(rooms))
	})

	t.Run("Courses exceeding the seats earn nothing", func(t *testing.T) {
		schedule := NewSchedule()
		marathon := CourseSection{Id: 9, Name: "Marathon", Duration: 40}
		require.NoError(t, schedule.Assign(marathon, 0))

		assert.Equal(t, 0, schedule.ComputeScore(rooms))
	})

	t.Run("Sharing a slot earns an extra point", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 0))
		require.NoError(t, schedule.Assign(historyA, 0))
		require.NoError(t, schedule.Assign(physicsA, 0)) // Invalid, but still shares the slot

		assert.Equal(t, 4, schedule.ComputeScore(rooms))
	})

	t.Run("Room mapping is round-robin", func(t *testing.T) {
		assert.Equal(t, lectureRoom, RoomFor(0, rooms))
		assert.Equal(t, labRoom, RoomFor(1, rooms))
		assert.Equal(t, lectureRoom, RoomFor(10, rooms))
		assert.Equal(t, labRoom, RoomFor(7, rooms))
	})

	t.Run("Score bound", func(t *testing.T) {
		schedule := NewSchedule()
		for i, course := range []CourseSection{mathA, physicsA, chemistryA, historyA} {
			require.NoError(t, schedule.Assign(course, i%2))
		}

		score := schedule.ComputeScore(rooms)

		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 2*schedule.Len())
	})

	t.Run("Structural changes make the score stale", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 0))
		schedule.ComputeScore(rooms)

		require.NoError(t, schedule.Assign(historyA, 1))

		assert.True(t, schedule.Stale())
	})
}

func TestVerify(t *testing.T) {
	input := ModelInput{Courses: []CourseSection{mathA, physicsA, chemistryA, historyA}, Rooms: rooms}

	t.Run("Well-formed schedule", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 0))
		require.NoError(t, schedule.Assign(physicsA, 9))
		schedule.ComputeScore(rooms)

		assert.True(t, Verify(schedule, input, 10))
	})

	t.Run("Slot out of range", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 12))

		assert.False(t, Verify(schedule, input, 10))
	})

	t.Run("Unknown course", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(CourseSection{Id: 99}, 1))

		assert.False(t, Verify(schedule, input, 10))
	})

	t.Run("Course listed in two slots", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Assign(mathA, 1))
		schedule.slots[1] = append(schedule.slots[1], mathA)

		assert.False(t, Verify(schedule, input, 10))
	})
}
