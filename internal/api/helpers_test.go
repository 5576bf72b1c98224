package api_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newTestRouter() *gin.Engine {
	return gin.New()
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func testRun() models.Run {
	avg := 0.875

	return models.Run{
		ID:        "b9f1c1de-9c27-44cf-8b0f-0e8bbcfb4b57",
		InputPath: "data/day_area.csv",
		Records:   6,
		Nodes:     5,
		Edges:     4,
		AvgPath:   &avg,
		TopCloseness: []models.ClosenessEntry{
			{Day: "2025-04-01", Area: "Central", Score: 1.0},
			{Day: "2025-04-01", Area: "Hollywood", Score: 0.8},
			{Day: "2025-04-02", Area: "Central", Score: 0.0},
		},
		NumComponents: 2,
		Duration:      42 * time.Millisecond,
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}
