package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"assignment-admin-backend/internal/api/handlers"
	"assignment-admin-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newHealthRouter(t *testing.T, pingErr error) *testutils.HTTPTestSuite {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(pingErr)

	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(db, "test")
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newHealthRouter(t, nil)

		w := h.MakeRequest(http.MethodGet, "/health", nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "test", resp.Version)
		assert.Equal(t, "healthy", resp.Services["database"])
	})

	t.Run("database down", func(t *testing.T) {
		h := newHealthRouter(t, errors.New("connection refused"))

		w := h.MakeRequest(http.MethodGet, "/health", nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Contains(t, resp.Services["database"], "connection refused")
	})
}

func TestReadyAndLive(t *testing.T) {
	h := newHealthRouter(t, errors.New("starting up"))

	w := h.MakeRequest(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not ready: starting up")

	w = h.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
