package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	handler := NewScheduleHandler(genetic.DefaultConfig(), 200, 5, zap.NewNop(), m)
	return NewRouter(handler, m, zap.NewNop())
}

func post(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func scenarioBody() map[string]any {
	return map[string]any{
		"courses": []map[string]any{
			{"id": 1, "name": "Math 101 - Class A", "duration": 2, "teacher": "Mr. Smith"},
			{"id": 2, "name": "Physics 101 - Class A", "duration": 2, "requiresLab": true, "teacher": "Dr. Johnson"},
			{"id": 3, "name": "Chemistry 101 - Class A", "duration": 2, "requiresLab": true, "teacher": "Dr. Lee"},
			{"id": 4, "name": "History 101 - Class A", "duration": 1, "teacher": "Ms. Brown"},
		},
		"rooms": []map[string]any{
			{"id": 1, "name": "Room 1", "seats": 30},
			{"id": 2, "name": "Room 2", "seats": 25, "isLab": true},
		},
		"totalSlots":     10,
		"generations":    20,
		"populationSize": 10,
		"seed":           5,
	}
}

func TestGenerate(t *testing.T) {
	router := newTestRouter()

	t.Run("Valid request", func(t *testing.T) {
		//** Act
		rec := post(t, router, scenarioBody())

		//** Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var res generateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.NotEmpty(t, res.RunId)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Generations, 20)
		assert.Len(t, res.Entries, 4)
		for _, entry := range res.Entries {
			assert.Less(t, entry.Slot, 10)
		}
	})

	t.Run("Population too small", func(t *testing.T) {
		body := scenarioBody()
		body["populationSize"] = 2

		rec := post(t, router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rooms are required", func(t *testing.T) {
		body := scenarioBody()
		body["rooms"] = []map[string]any{}

		rec := post(t, router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate course ids", func(t *testing.T) {
		body := scenarioBody()
		body["courses"] = []map[string]any{
			{"id": 1, "name": "Math 101 - Class A", "duration": 2},
			{"id": 1, "name": "Math 101 - Class B", "duration": 2},
		}

		rec := post(t, router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "duplicate course id")
	})

	t.Run("Generations above the cap", func(t *testing.T) {
		body := scenarioBody()
		body["generations"] = 5000

		rec := post(t, router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter()
	post(t, router, scenarioBody())

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "timetabling_runs_total")
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}
