package appointment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/agenda-api/internal/model"
	"github.com/clinickit/agenda-api/internal/repository/memory"
	appointmentService "github.com/clinickit/agenda-api/internal/service/appointment"
)

var testNow = time.Date(2024, 2, 25, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupHandler() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	repo := memory.NewSeededRepository(testNow)
	svc := appointmentService.NewService(repo, time.Minute, nil, &logger).
		WithClock(func() time.Time { return testNow })

	h := NewHandler(svc)
	engine := gin.New()
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterMutatingRoutes(api)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestListAppointments(t *testing.T) {
	engine := setupHandler()

	w, env := doRequest(engine, http.MethodGet, "/api/v1/appointments", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.NotEmpty(t, views)

	for _, v := range views {
		assert.NotEmpty(t, v["label"])
		assert.NotEmpty(t, v["severity"])
	}
}

func TestListAppointmentsScheduledFilter(t *testing.T) {
	engine := setupHandler()

	w, env := doRequest(engine, http.MethodGet, "/api/v1/appointments?filter=scheduled", "")

	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.Equal(t, "scheduled", v["status"])
	}
}

func TestListAppointmentsUnknownFilterBehavesAsAll(t *testing.T) {
	engine := setupHandler()

	_, all := doRequest(engine, http.MethodGet, "/api/v1/appointments", "")
	_, unknown := doRequest(engine, http.MethodGet, "/api/v1/appointments?filter=bogus", "")

	var allViews, unknownViews []json.RawMessage
	require.NoError(t, json.Unmarshal(all.Data, &allViews))
	require.NoError(t, json.Unmarshal(unknown.Data, &unknownViews))
	assert.Len(t, unknownViews, len(allViews))
}

func TestGetStats(t *testing.T) {
	engine := setupHandler()

	w, env := doRequest(engine, http.MethodGet, "/api/v1/appointments/stats", "")

	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	for _, key := range []string{"today", "completed", "missed", "upcoming_scheduled"} {
		assert.Contains(t, stats, key)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	engine := setupHandler()

	w, env := doRequest(engine, http.MethodPatch,
		fmt.Sprintf("/api/v1/appointments/%s/status", uuid.New()),
		`{"status":"completed"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestUpdateStatusInvalidBody(t *testing.T) {
	engine := setupHandler()

	w, _ := doRequest(engine, http.MethodPatch,
		fmt.Sprintf("/api/v1/appointments/%s/status", uuid.New()),
		`{"status":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusInvalidID(t *testing.T) {
	engine := setupHandler()

	w, _ := doRequest(engine, http.MethodPatch, "/api/v1/appointments/not-a-uuid/status",
		`{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	engine := setupHandler()

	_, list := doRequest(engine, http.MethodGet, "/api/v1/appointments?filter=scheduled", "")
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Data, &views))
	require.NotEmpty(t, views)
	id := views[0]["id"].(string)

	w, env := doRequest(engine, http.MethodPatch,
		fmt.Sprintf("/api/v1/appointments/%s/status", id),
		`{"status":"completed"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
}

func TestDeleteWithoutConfirmIsRejected(t *testing.T) {
	engine := setupHandler()

	_, list := doRequest(engine, http.MethodGet, "/api/v1/appointments", "")
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Data, &views))
	id := views[0]["id"].(string)

	w, env := doRequest(engine, http.MethodDelete, "/api/v1/appointments/"+id, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "confirm")
}

func TestDeleteConfirmed(t *testing.T) {
	engine := setupHandler()

	_, list := doRequest(engine, http.MethodGet, "/api/v1/appointments", "")
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Data, &views))
	before := len(views)
	id := views[0]["id"].(string)

	w, _ := doRequest(engine, http.MethodDelete, "/api/v1/appointments/"+id+"?confirm=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, list = doRequest(engine, http.MethodGet, "/api/v1/appointments", "")
	require.NoError(t, json.Unmarshal(list.Data, &views))
	assert.Len(t, views, before-1)
}
