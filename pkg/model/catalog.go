package model

// SampleCourses returns the built-in catalog of course sections used when no input file is given
func SampleCourses() []CourseSection {
	return []CourseSection{
		{Id: 1, Name: "Math 101 - Class A", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 2, Name: "Physics 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"},
		{Id: 3, Name: "Chemistry 101 - Class A", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"},
		{Id: 4, Name: "History 101 - Class A", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"},
		{Id: 5, Name: "Math 101 - Class B", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 6, Name: "Computer Science 101 - Class B", Duration: 2, RequiresLab: true, Teacher: "Dr. Walker"},
		{Id: 7, Name: "English 101 - Class B", Duration: 1, RequiresLab: false, Teacher: "Ms. Green"},
		{Id: 8, Name: "Biology 101 - Class B", Duration: 2, RequiresLab: true, Teacher: "Dr. Adams"},
		{Id: 9, Name: "Math 101 - Class C", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 10, Name: "Physics 101 - Class C", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"},
		{Id: 11, Name: "Chemistry 101 - Class C", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"},
		{Id: 12, Name: "History 101 - Class C", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"},
		{Id: 13, Name: "Math 101 - Class D", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 14, Name: "Computer Science 101 - Class D", Duration: 2, RequiresLab: true, Teacher: "Dr. Walker"},
		{Id: 15, Name: "English 101 - Class D", Duration: 1, RequiresLab: false, Teacher: "Ms. Green"},
		{Id: 16, Name: "Biology 101 - Class D", Duration: 2, RequiresLab: true, Teacher: "Dr. Adams"},
		{Id: 17, Name: "Math 101 - Class E", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 18, Name: "Physics 101 - Class E", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"},
		{Id: 19, Name: "Chemistry 101 - Class E", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"},
		{Id: 20, Name: "History 101 - Class E", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"},
		{Id: 21, Name: "Math 101 - Class F", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 22, Name: "Computer Science 101 - Class F", Duration: 2, RequiresLab: true, Teacher: "Dr. Walker"},
		{Id: 23, Name: "English 101 - Class F", Duration: 1, RequiresLab: false, Teacher: "Ms. Green"},
		{Id: 24, Name: "Biology 101 - Class F", Duration: 2, RequiresLab: true, Teacher: "Dr. Adams"},
		{Id: 25, Name: "Math 101 - Class G", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 26, Name: "Physics 101 - Class G", Duration: 2, RequiresLab: true, Teacher: "Dr. Johnson"},
		{Id: 27, Name: "Chemistry 101 - Class G", Duration: 2, RequiresLab: true, Teacher: "Dr. Lee"},
		{Id: 28, Name: "History 101 - Class G", Duration: 1, RequiresLab: false, Teacher: "Ms. Brown"},
		{Id: 29, Name: "Math 101 - Class H", Duration: 2, RequiresLab: false, Teacher: "Mr. Smith"},
		{Id: 30, Name: "Computer Science 101 - Class H", Duration: 2, RequiresLab: true, Teacher: "Dr. Walker"},
		{Id: 31, Name: "English 101 - Class H", Duration: 1, RequiresLab: false, Teacher: "Ms. Green"},
		{Id: 32, Name: "Biology 101 - Class H", Duration: 2, RequiresLab: true, Teacher: "Dr. Adams"},
	}
}

func SampleRooms() []Room {
	return []Room{
		{Id: 1, Name: "Room 1", Seats: 30, IsLab: false},
		{Id: 2, Name: "Room 2", Seats: 25, IsLab: true},
	}
}
