package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int
	Log  LogConfig

	// Optimizer holds the defaults applied to every run unless a request overrides them
	Optimizer genetic.Config
	// MaxGenerations caps the generations a single HTTP request may ask for
	MaxGenerations int
	Days           int
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional .env file and the environment, the latter taking precedence
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetInt("PORT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Optimizer: genetic.Config{
			Generations:     v.GetInt("GA_GENERATIONS"),
			PopulationSize:  v.GetInt("GA_POPULATION_SIZE"),
			TotalSlots:      v.GetInt("GA_TOTAL_SLOTS"),
			CrossoverPoints: v.GetInt("GA_CROSSOVER_POINTS"),
			MutationChance:  v.GetFloat64("GA_MUTATION_CHANCE"),
			Seed:            v.GetUint64("GA_SEED"),
			Parallel:        v.GetBool("GA_PARALLEL"),
		},
		MaxGenerations: v.GetInt("GA_MAX_GENERATIONS"),
		Days:           v.GetInt("TIMETABLE_DAYS"),
	}

	if err := cfg.Optimizer.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("GA_GENERATIONS", genetic.DefaultGenerations)
	v.SetDefault("GA_POPULATION_SIZE", genetic.DefaultPopulationSize)
	v.SetDefault("GA_TOTAL_SLOTS", genetic.DefaultTotalSlots)
	v.SetDefault("GA_CROSSOVER_POINTS", genetic.DefaultCrossoverPoints)
	v.SetDefault("GA_MUTATION_CHANCE", genetic.DefaultMutationChance)
	v.SetDefault("GA_SEED", 0)
	v.SetDefault("GA_PARALLEL", false)
	v.SetDefault("GA_MAX_GENERATIONS", 1000)
	v.SetDefault("TIMETABLE_DAYS", 5)
}
