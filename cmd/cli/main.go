package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"time"

	"github.com/limaJavier/genetic-timetabling/pkg/config"
	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/logger"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

const configFileName = "optimizer.json"

// Exit codes
const (
	exitPerfect      = 10
	exitImperfect    = 20
	exitUnverifiable = 15
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file; if empty, the built-in sample catalog is used")
	configPathPtr := flag.String("config", "", "Path to an optimizer config file; if empty, \""+configFileName+"\" next to the executable is used when present")
	generationsPtr := flag.Int("generations", genetic.DefaultGenerations, "Maximum number of generations")
	populationPtr := flag.Int("population", genetic.DefaultPopulationSize, "Population size (at least 3)")
	slotsPtr := flag.Int("slots", genetic.DefaultTotalSlots, "Number of time slots")
	seedPtr := flag.Uint64("seed", 0, "Seed of the pseudo-random generator; if 0, a time-based seed is used")
	daysPtr := flag.Int("days", model.DefaultDays, "Days per week used to lay out the slots (between 1 and 7)")
	parallelPtr := flag.Bool("parallel", false, "Score individuals concurrently")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	days := *daysPtr
	outFile := *outFilePathPtr

	// Resolve optimizer configuration: file first, then explicitly set flags
	optimizerConfig := loadOptimizerConfig(*configPathPtr)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			optimizerConfig.Generations = *generationsPtr
		case "population":
			optimizerConfig.PopulationSize = *populationPtr
		case "slots":
			optimizerConfig.TotalSlots = *slotsPtr
		case "seed":
			optimizerConfig.Seed = *seedPtr
		case "parallel":
			optimizerConfig.Parallel = *parallelPtr
		}
	})
	if optimizerConfig.Seed == 0 {
		optimizerConfig.Seed = uint64(time.Now().UnixNano())
	}

	// Validate arguments
	if err := optimizerConfig.Validate(); err != nil {
		log.Fatalf("invalid optimizer configuration: %v", err)
	} else if days < 1 || days > len(model.Days) {
		log.Fatalf("days must be between 1 and %v: %v", len(model.Days), days)
	}

	// Extract input
	input, err := readInput(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engines
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck
	timetabler := genetic.NewGeneticTimetabler(optimizerConfig, genetic.WithLogger(logr))

	// Build timetable
	result, err := timetabler.Build(input)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	// Verify timetable correctness
	if !timetabler.Verify(result.Best, input) {
		fmt.Printf("Score: %v\n", result.Best.Score())
		os.Exit(exitUnverifiable)
	}

	// Build output from timetable
	perDayTimetable := make(map[string][]model.TimetableEntry)
	for _, entry := range model.BuildTimetable(result.Best, input.Rooms, days) {
		perDayTimetable[entry.DayName] = append(perDayTimetable[entry.DayName], entry)
	}

	// Marshal output into json
	perDayTimetableJson, err := json.Marshal(perDayTimetable)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(perDayTimetableJson))
	} else {
		err := os.WriteFile(outFile, perDayTimetableJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Score: %v\n", result.Best.Score())
	fmt.Printf("Generations: %v\n", result.Generations)
	fmt.Printf("Scheduled: %v/%v\n", result.Best.Len(), len(input.Courses))
	if _, err := model.AllocateRooms(result.Best, input.Rooms); err != nil {
		fmt.Printf("Room allocation: %v\n", err)
	}

	if result.Perfect {
		os.Exit(exitPerfect)
	}
	os.Exit(exitImperfect)
}

func readInput(filePath string) (model.ModelInput, error) {
	if filePath == "" {
		return model.ProcessRawInput(model.RawModelInput{
			Courses: model.SampleCourses(),
			Rooms:   model.SampleRooms(),
		})
	}
	return model.InputFromJson(filePath)
}

func loadOptimizerConfig(configPath string) genetic.Config {
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if configPath == "" {
		return genetic.DefaultConfig()
	}

	optimizerConfig, err := genetic.ConfigFromJson(configPath)
	if err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}
	return optimizerConfig
}

// defaultConfigPath returns the config file placed next to the executable, or "" if there is none
func defaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, configFileName) {
		return ""
	}
	return execPath + "/" + configFileName
}
