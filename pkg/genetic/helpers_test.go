package genetic

import (
	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

var (
	testCourses = []model.CourseSection{
		{Id: 1, Name: "Math 101 - Class A", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 2, Name: "Physics 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"},
		{Id: 3, Name: "Chemistry 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"},
		{Id: 4, Name: "History 101 - Class A", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"},
	}
	testRooms = []model.Room{
		{Id: 1, Name: "Room 1", Seats: 30, IsLab: false},
		{Id: 2, Name: "Room 2", Seats: 25, IsLab: true},
	}
)

func randomSchedule(seed uint64, courses []model.CourseSection, totalSlots int) *model.Schedule {
	population, _ := InitializePopulation(NewRand(seed), 1, courses, totalSlots)
	return population[0]
}
