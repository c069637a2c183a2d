package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/service"
	"github.com/shenikar/rescue_status_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T, apiKeys ...string) (*mocks.MockPersonService, *mocks.MockAssignmentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	personMock := mocks.NewMockPersonService(ctrl)
	assignmentMock := mocks.NewMockAssignmentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: apiKeys}
	handler := NewHandler(personMock, assignmentMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return personMock, assignmentMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestRegisterPerson_Success(t *testing.T) {
	personMock, _, router := newTestHandler(t)
	reqBody := RegisterPersonRequest{ID: "resp_001", Role: "responder"}
	expected := &models.Person{
		ID:     "resp_001",
		Role:   models.RoleResponder,
		Status: models.StatusDocked,
	}

	personMock.EXPECT().
		Register(gomock.Any(), "resp_001", models.RoleResponder).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/persons", jsonBody(t, reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp PersonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resp_001", resp.ID)
	assert.Equal(t, "docked", resp.Status)
}

func TestRegisterPerson_InvalidRole(t *testing.T) {
	personMock, _, router := newTestHandler(t)
	reqBody := RegisterPersonRequest{ID: "x_001", Role: "dispatcher"}

	// Сервис не должен вызываться при ошибке валидации
	personMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/persons", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPerson_NotFound(t *testing.T) {
	personMock, _, router := newTestHandler(t)

	personMock.EXPECT().
		Get(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: person ghost: %w", service.ErrPersonNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/persons/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveCall_Accepted(t *testing.T) {
	personMock, _, router := newTestHandler(t)
	now := time.Now().UTC().Truncate(time.Second)
	reqBody := SaveCallRequest{
		ID:         "call_001",
		Transcript: "help, my friend is bleeding",
		Tags:       []string{"bleeding"},
		StartedAt:  now.Add(-time.Minute),
		EndedAt:    now,
	}

	personMock.EXPECT().
		SaveCall(gomock.Any(), "civ_001", gomock.Any()).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/persons/civ_001/calls", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSaveLocation_InvalidLatitude(t *testing.T) {
	personMock, _, router := newTestHandler(t)
	reqBody := SaveLocationRequest{
		Latitude:  123.0,
		Longitude: 28.9784,
		Timestamp: time.Now(),
	}

	personMock.EXPECT().SaveLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/persons/civ_001/locations", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPriorityScore_Success(t *testing.T) {
	personMock, _, router := newTestHandler(t)

	personMock.EXPECT().
		PriorityScore(gomock.Any(), "civ_001").
		Return(85, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/persons/civ_001/priority", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PriorityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "civ_001", resp.PersonID)
	assert.Equal(t, 85, resp.Score)
}

func TestGetPriorityScore_RoleMismatch(t *testing.T) {
	personMock, _, router := newTestHandler(t)

	personMock.EXPECT().
		PriorityScore(gomock.Any(), "resp_001").
		Return(0, fmt.Errorf("service: person resp_001 is not a civilian: %w", service.ErrRoleMismatch)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/persons/resp_001/priority", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssignment_Success(t *testing.T) {
	_, assignmentMock, router := newTestHandler(t)
	reqBody := CreateAssignmentRequest{CivilianID: "civ_001", ResponderID: "resp_001"}
	expected := &models.Assignment{
		ID:          uuid.New(),
		CivilianID:  "civ_001",
		ResponderID: "resp_001",
		AssignedAt:  time.Now(),
		IsActive:    true,
	}

	assignmentMock.EXPECT().
		Create(gomock.Any(), "civ_001", "resp_001").
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/assignments", jsonBody(t, reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.True(t, resp.IsActive)
}

func TestCreateAssignment_Conflict(t *testing.T) {
	_, assignmentMock, router := newTestHandler(t)
	reqBody := CreateAssignmentRequest{CivilianID: "civ_001", ResponderID: "resp_001"}

	assignmentMock.EXPECT().
		Create(gomock.Any(), "civ_001", "resp_001").
		Return(nil, fmt.Errorf("service: person civ_001: %w", service.ErrActiveAssignmentExists)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/assignments", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAssignments_ActiveFilter(t *testing.T) {
	_, assignmentMock, router := newTestHandler(t)

	assignmentMock.EXPECT().
		List(gomock.Any(), true).
		Return([]*models.Assignment{}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/assignments?active=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompleteAssignment_NotFound(t *testing.T) {
	_, assignmentMock, router := newTestHandler(t)
	id := uuid.New()

	assignmentMock.EXPECT().
		Complete(gomock.Any(), id).
		Return(fmt.Errorf("service: assignment %s: %w", id, service.ErrAssignmentNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/assignments/"+id.String()+"/complete", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteAssignment_InvalidID(t *testing.T) {
	_, assignmentMock, router := newTestHandler(t)

	assignmentMock.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/assignments/not-a-uuid/complete", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	personMock, _, router := newTestHandler(t, "secret-key")

	personMock.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/persons/civ_001", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	personMock, _, router := newTestHandler(t, "secret-key")

	personMock.EXPECT().
		Get(gomock.Any(), "civ_001").
		Return(&models.Person{ID: "civ_001", Role: models.RoleCivilian, Status: models.StatusNormal}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/persons/civ_001", nil, map[string]string{"X-API-Key": "secret-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_Open(t *testing.T) {
	_, _, router := newTestHandler(t, "secret-key")

	// Health-check доступен без ключа
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
