package model

import "fmt"

// DuplicateAssignmentError is returned when a course already holds a slot in the schedule
type DuplicateAssignmentError struct {
	Course CourseSection
	Slot   int // Slot the course currently holds
}

func (err DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("course %d (\"%v\") is already scheduled at slot %d", err.Course.Id, err.Course.Name, err.Slot)
}

// SlotConflictError is returned when the target slot already holds the very same course
type SlotConflictError struct {
	Course CourseSection
	Slot   int
}

func (err SlotConflictError) Error() string {
	return fmt.Sprintf("slot %d already holds course %d (\"%v\")", err.Slot, err.Course.Id, err.Course.Name)
}

type SlotRangeError struct {
	Slot int
}

func (err SlotRangeError) Error() string {
	return fmt.Sprintf("slot %d is out of range", err.Slot)
}

type unassignableError struct {
	slot int
}

func (err unassignableError) Error() string {
	return fmt.Sprintf("not all courses at slot %d can be assigned a room", err.slot)
}
