package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"go.uber.org/zap"
)

// ScheduleHandler runs the optimizer for HTTP callers
type ScheduleHandler struct {
	defaults       genetic.Config
	maxGenerations int
	days           int
	logger         *zap.Logger
	observer       genetic.Observer
}

func NewScheduleHandler(defaults genetic.Config, maxGenerations, days int, logger *zap.Logger, observer genetic.Observer) *ScheduleHandler {
	return &ScheduleHandler{
		defaults:       defaults,
		maxGenerations: maxGenerations,
		days:           days,
		logger:         logger,
		observer:       observer,
	}
}

func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := model.ProcessRawInput(req.rawInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, days, err := h.configFor(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runId := uuid.NewString()
	logger := h.logger.With(zap.String("run_id", runId))
	options := []genetic.Option{genetic.WithLogger(logger)}
	if h.observer != nil {
		options = append(options, genetic.WithObserver(h.observer))
	}
	timetabler := genetic.NewGeneticTimetabler(config, options...)

	result, err := timetabler.Build(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !timetabler.Verify(result.Best, input) {
		logger.Error("schedule failed verification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schedule failed verification"})
		return
	}

	allocation, err := model.AllocateRooms(result.Best, input.Rooms)
	if err != nil {
		logger.Debug("rooms cannot be allocated", zap.Error(err))
	}

	c.JSON(http.StatusOK, generateResponse{
		RunId:       runId,
		Score:       result.Best.Score(),
		Perfect:     result.Perfect,
		Generations: result.Generations,
		Dropped:     result.Tally.Dropped,
		Allocatable: err == nil,
		Allocation:  allocation,
		Entries:     model.BuildTimetable(result.Best, input.Rooms, days),
	})
}

func (h *ScheduleHandler) configFor(req generateRequest) (genetic.Config, int, error) {
	config := h.defaults
	days := h.days

	if req.TotalSlots != nil {
		config.TotalSlots = *req.TotalSlots
	}
	if req.Generations != nil {
		config.Generations = *req.Generations
	}
	if req.PopulationSize != nil {
		config.PopulationSize = *req.PopulationSize
	}
	if req.Days != nil {
		days = *req.Days
	}
	if req.Seed != nil {
		config.Seed = *req.Seed
	} else {
		config.Seed = uint64(time.Now().UnixNano())
	}

	if h.maxGenerations > 0 && config.Generations > h.maxGenerations {
		return genetic.Config{}, 0, fmt.Errorf("generations must not exceed %v: %v", h.maxGenerations, config.Generations)
	}
	return config, days, config.Validate()
}
