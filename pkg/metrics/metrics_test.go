package metrics

import (
	"testing"
	"time"

	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ genetic.Observer = (*Metrics)(nil)

func TestObserveRun(t *testing.T) {
	//** Arrange
	m := New()
	config := genetic.DefaultConfig()
	config.Generations = 5
	config.PopulationSize = 6
	timetabler := genetic.NewGeneticTimetabler(config, genetic.WithObserver(m))

	//** Act
	result, err := timetabler.Build(model.ModelInput{Courses: model.SampleCourses(), Rooms: model.SampleRooms()})

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.runs.WithLabelValues("false"))+testutil.ToFloat64(m.runs.WithLabelValues("true")))
	assert.Equal(t, float64(result.Best.Score()), testutil.ToFloat64(m.bestScore))
	assert.Equal(t, float64(result.Tally.Dropped), testutil.ToFloat64(m.droppedTotal))
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest("POST", "/schedules", 200, 40*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/schedules", 200, 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestTotal.WithLabelValues("POST", "/schedules", "200")))
}
