package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

const sampleTestName = "sample"

type TestMetadata struct {
	Name    string
	Input   model.ModelInput
	Courses int
	Rooms   int
}

type BenchmarkResult struct {
	Test        TestMetadata
	Config      genetic.Config
	Duration    int64 // Milliseconds
	Score       int
	Generations int
	Perfect     bool
	Dropped     int
}

func main() {
	directoryPtr := flag.String("dir", "", "Directory holding input files; if empty, the built-in sample catalog is benchmarked")
	populationsPtr := flag.String("populations", "10,50,100", "Comma separated population sizes")
	generationsPtr := flag.String("generations", "50,100", "Comma separated generation counts")
	slotsPtr := flag.Int("slots", genetic.DefaultTotalSlots, "Number of time slots")
	seedsPtr := flag.Int("seeds", 5, "Runs per configuration, seeded 1..n")
	parallelPtr := flag.Bool("parallel", false, "Score individuals concurrently")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV report")
	flag.Parse()

	tests := getTests(*directoryPtr)
	configs := getConfigs(parseSizes(*populationsPtr), parseSizes(*generationsPtr), *slotsPtr, *seedsPtr, *parallelPtr)
	results := make([]BenchmarkResult, 0, len(tests)*len(configs))

	for _, test := range tests {
		for _, config := range configs {
			fmt.Printf("Benchmarking test \"%v\" with population \"%v\", generations \"%v\" and seed \"%v\"\n", test.Name, config.PopulationSize, config.Generations, config.Seed)
			results = append(results, measure(test, config))
		}
	}

	toCsv(results, *outFilePtr)
}

func getTests(directory string) []TestMetadata {
	if directory == "" {
		input := model.ModelInput{Courses: model.SampleCourses(), Rooms: model.SampleRooms()}
		return []TestMetadata{{Name: sampleTestName, Input: input, Courses: len(input.Courses), Rooms: len(input.Rooms)}}
	}

	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		filename := strings.TrimSuffix(directory, "/") + "/" + file.Name()
		input, err := model.InputFromJson(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:    filename,
			Input:   input,
			Courses: len(input.Courses),
			Rooms:   len(input.Rooms),
		})
	}
	return tests
}

func getConfigs(populations, generations []int, slots, seeds int, parallel bool) []genetic.Config {
	configs := make([]genetic.Config, 0, len(populations)*len(generations)*seeds)
	for _, population := range populations {
		for _, generationCount := range generations {
			for seed := 1; seed <= seeds; seed++ {
				config := genetic.DefaultConfig()
				config.PopulationSize, config.Generations = population, generationCount
				config.TotalSlots = slots
				config.Seed = uint64(seed)
				config.Parallel = parallel

				if err := config.Validate(); err != nil {
					log.Fatalf("invalid benchmark configuration: %v", err)
				}
				configs = append(configs, config)
			}
		}
	}
	return configs
}

func measure(test TestMetadata, config genetic.Config) BenchmarkResult {
	timetabler := genetic.NewGeneticTimetabler(config)

	start := time.Now()
	result, err := timetabler.Build(test.Input)
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred during the execution at test \"%v\" using population \"%v\", generations \"%v\", seed \"%v\": %v\n", test.Name, config.PopulationSize, config.Generations, config.Seed, err)
	}

	return BenchmarkResult{
		Test:        test,
		Config:      config,
		Duration:    duration.Milliseconds(),
		Score:       result.Best.Score(),
		Generations: result.Generations,
		Perfect:     result.Perfect,
		Dropped:     result.Tally.Dropped,
	}
}

func toCsv(results []BenchmarkResult, outFile string) {
	file, err := os.Create(outFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Test", "Courses", "Rooms", "Population", "Generations", "Slots", "Seed", "Duration(ms)", "Score", "Generations Used", "Perfect", "Dropped"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.Courses),
		fmt.Sprintf("%d", result.Test.Rooms),
		fmt.Sprintf("%d", result.Config.PopulationSize),
		fmt.Sprintf("%d", result.Config.Generations),
		fmt.Sprintf("%d", result.Config.TotalSlots),
		fmt.Sprintf("%d", result.Config.Seed),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%d", result.Score),
		fmt.Sprintf("%d", result.Generations),
		fmt.Sprintf("%v", result.Perfect),
		fmt.Sprintf("%d", result.Dropped),
	}
}

func parseSizes(sizesStr string) []int {
	parts := lo.Filter(strings.Split(sizesStr, ","), func(part string, _ int) bool {
		return strings.TrimSpace(part) != ""
	})
	return lo.Map(parts, func(part string, _ int) int {
		return lo.Must(strconv.Atoi(strings.TrimSpace(part)))
	})
}
