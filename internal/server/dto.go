package server

import (
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

type courseRequest struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name" binding:"required"`
	Duration    uint64 `json:"duration"`
	RequiresLab bool   `json:"requiresLab"`
	Teacher     string `json:"teacher"`
}

type roomRequest struct {
	Id    uint64 `json:"id"`
	Name  string `json:"name" binding:"required"`
	Seats uint64 `json:"seats"`
	IsLab bool   `json:"isLab"`
}

// generateRequest carries the algorithm inputs. Optional fields fall back to the server defaults.
type generateRequest struct {
	Courses        []courseRequest `json:"courses" binding:"required,dive"`
	Rooms          []roomRequest   `json:"rooms" binding:"required,min=1,dive"`
	TotalSlots     *int            `json:"totalSlots" binding:"omitempty,min=1"`
	Generations    *int            `json:"generations" binding:"omitempty,min=1"`
	PopulationSize *int            `json:"populationSize" binding:"omitempty,min=3"`
	Seed           *uint64         `json:"seed"`
	Days           *int            `json:"days" binding:"omitempty,min=1,max=7"`
}

type generateResponse struct {
	RunId       string                 `json:"runId"`
	Score       int                    `json:"score"`
	Perfect     bool                   `json:"perfect"`
	Generations int                    `json:"generations"`
	Dropped     int                    `json:"dropped"`
	Allocatable bool                   `json:"allocatable"`
	Allocation  map[uint64]uint64      `json:"allocation,omitempty"`
	Entries     []model.TimetableEntry `json:"entries"`
}

func (request generateRequest) rawInput() model.RawModelInput {
	return model.RawModelInput{
		Courses: lo.Map(request.Courses, func(course courseRequest, _ int) model.CourseSection {
			return model.CourseSection{
				Id:          course.Id,
				Name:        course.Name,
				Duration:    course.Duration,
				RequiresLab: course.RequiresLab,
				Teacher:     course.Teacher,
			}
		}),
		Rooms: lo.Map(request.Rooms, func(room roomRequest, _ int) model.Room {
			return model.Room{
				Id:    room.Id,
				Name:  room.Name,
				Seats: room.Seats,
				IsLab: room.IsLab,
			}
		}),
	}
}
