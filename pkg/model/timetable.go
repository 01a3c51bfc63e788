package model

import (
	"cmp"
	"slices"
)

const DefaultDays = 5

var Days = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

type TimetableEntry struct {
	Slot     int    `json:"slot"`
	Day      int    `json:"day"`
	DayName  string `json:"dayName"`
	Period   int    `json:"period"`
	Course   uint64 `json:"course"`
	Name     string `json:"name"`
	Teacher  string `json:"teacher"`
	Duration uint64 `json:"duration"`
	Room     uint64 `json:"room"`
	RoomName string `json:"roomName"`
}

// BuildTimetable projects the schedule onto a week of the given number of days.
// Slots run across days first: day = slot mod days, period = slot / days.
func BuildTimetable(schedule *Schedule, rooms []Room, days int) []TimetableEntry {
	if days <= 0 {
		days = DefaultDays
	}

	entries := make([]TimetableEntry, 0, schedule.Len())
	for _, course := range schedule.courses {
		slot := schedule.assignment[course.Id]
		room := RoomFor(slot, rooms)
		day := slot % days

		entries = append(entries, TimetableEntry{
			Slot:     slot,
			Day:      day,
			DayName:  Days[day],
			Period:   slot / days,
			Course:   course.Id,
			Name:     course.Name,
			Teacher:  course.Teacher,
			Duration: course.Duration,
			Room:     room.Id,
			RoomName: room.Name,
		})
	}

	slices.SortStableFunc(entries, func(a, b TimetableEntry) int {
		if dayComparison := cmp.Compare(a.Day, b.Day); dayComparison != 0 {
			return dayComparison
		}
		return cmp.Compare(a.Period, b.Period)
	})
	return entries
}
