package genetic

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultGenerations     = 100
	DefaultPopulationSize  = 50
	DefaultTotalSlots      = 30
	DefaultCrossoverPoints = 2
	DefaultMutationChance  = 0.05

	// TournamentSize is the number of individuals competing in each parent selection
	TournamentSize = 3
)

type Config struct {
	Generations     int
	PopulationSize  int
	TotalSlots      int
	CrossoverPoints int
	MutationChance  float64
	Seed            uint64
	Parallel        bool // Score individuals of a generation on separate goroutines
}

func DefaultConfig() Config {
	return Config{
		Generations:     DefaultGenerations,
		PopulationSize:  DefaultPopulationSize,
		TotalSlots:      DefaultTotalSlots,
		CrossoverPoints: DefaultCrossoverPoints,
		MutationChance:  DefaultMutationChance,
	}
}

// ConfigFromJson reads a configuration file. Missing keys keep their default values.
func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, err
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	if config.Generations <= 0 {
		return fmt.Errorf("generations must be positive: %v", config.Generations)
	} else if config.PopulationSize < TournamentSize {
		return fmt.Errorf("population size must be at least %v for tournament selection: %v", TournamentSize, config.PopulationSize)
	} else if config.TotalSlots <= 0 {
		return fmt.Errorf("total slots must be positive: %v", config.TotalSlots)
	} else if config.CrossoverPoints < 0 {
		return fmt.Errorf("crossover points must not be negative: %v", config.CrossoverPoints)
	} else if config.MutationChance < 0 || config.MutationChance > 1 {
		return fmt.Errorf("mutation chance must be between 0 and 1: %v", config.MutationChance)
	}
	return nil
}
