package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"datachat/charts"
	"datachat/dataset"
	"datachat/db"
	"datachat/models"
	"datachat/stats"
)

// plannerStub stands in for the DashScope-backed planner so handler
// tests run without a network.
type plannerStub struct {
	plan *models.AnalysisPlan
	err  error

	calls        int
	lastQuestion string
	lastRowCount int
	lastProfile  []dataset.ColumnProfile
}

func (p *plannerStub) ResolvePlan(_ context.Context, question string, profile []dataset.ColumnProfile, rowCount int, _ []models.ChatHistory) (*models.AnalysisPlan, error) {
	p.calls++
	p.lastQuestion = question
	p.lastProfile = profile
	p.lastRowCount = rowCount
	return p.plan, p.err
}

// newTestRouter wires real handlers over a throwaway badger database
// and an in-memory session store. SQL Server stays unconfigured.
func newTestRouter(t *testing.T, planner Planner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	h := New(database, planner, nil,
		dataset.NewStore(time.Minute),
		dataset.NewProfiler(dataset.NewInferencer(), true),
		stats.NewEngine(),
		charts.NewValidator(false),
		1<<20)

	r := gin.New()
	r.GET("/health", h.HealthHandler)
	r.POST("/api/chat", h.ChatHandler)
	r.POST("/api/dataset", h.IngestDatasetHandler)
	r.POST("/api/dataset/upload", h.UploadDatasetHandler)
	r.POST("/api/dataset/sql", h.SQLDatasetHandler)
	r.GET("/api/dataset/profile", h.ProfileHandler)
	r.DELETE("/api/dataset", h.DeleteDatasetHandler)
	r.GET("/api/history", h.GetHistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, session string) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func carsRows() []dataset.Row {
	return []dataset.Row{
		{"Origin": "USA", "MPG": 20.0},
		{"Origin": "USA", "MPG": 30.0},
		{"Origin": "Japan", "MPG": 40.0},
	}
}
