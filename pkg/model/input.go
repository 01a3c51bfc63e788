package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type CourseSection struct {
	Id          uint64
	Name        string
	Duration    uint64 // Periods consumed by the section
	RequiresLab bool
	Teacher     string
}

type Room struct {
	Id    uint64
	Name  string
	Seats uint64
	IsLab bool
}

type RawModelInput struct {
	Courses []CourseSection
	Rooms   []Room
}

type ModelInput struct {
	Courses []CourseSection
	Rooms   []Room
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	err = json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	if len(rawInput.Rooms) == 0 {
		return ModelInput{}, fmt.Errorf("at least one room must be provided")
	}

	// Course ids are identity keys, so they must be unique
	if duplicates := lo.FindDuplicatesBy(rawInput.Courses, func(course CourseSection) uint64 { return course.Id }); len(duplicates) > 0 {
		return ModelInput{}, fmt.Errorf("duplicate course id %d (\"%v\")", duplicates[0].Id, duplicates[0].Name)
	}
	if duplicates := lo.FindDuplicatesBy(rawInput.Rooms, func(room Room) uint64 { return room.Id }); len(duplicates) > 0 {
		return ModelInput{}, fmt.Errorf("duplicate room id %d (\"%v\")", duplicates[0].Id, duplicates[0].Name)
	}

	return ModelInput{
		Courses: rawInput.Courses,
		Rooms:   rawInput.Rooms,
	}, nil
}
