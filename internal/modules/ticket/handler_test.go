package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpdesk/internal/database"
	"helpdesk/internal/domain"
	"helpdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorResponse struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type handlerFixture struct {
	router     *gin.Engine
	technician domain.Technician
	client     domain.Client
	taskType   domain.TaskType
	workMode   domain.WorkMode
	priority   domain.Priority
	openState  domain.TicketState
	finalState domain.TicketState
}

func setupRouter(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	f := &handlerFixture{
		technician: domain.Technician{
			FirstName: "Dora", LastName: "Bermudez",
			Email: "dora@example.com", Login: "dora", PasswordHash: "x",
			HireDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Active: true,
		},
		client:     domain.Client{CompanyName: "Acme SL", Country: "Spain", Active: true},
		taskType:   domain.TaskType{Name: "End-user support", EstimatedHours: 1.5, DefaultPriority: "Medium", Active: true},
		workMode:   domain.WorkMode{Name: "Remote", Active: true},
		priority:   domain.Priority{Name: "Medium", Level: 3, ColorHex: "#FFFF00"},
		openState:  domain.TicketState{Name: "New", FlowOrder: 1},
		finalState: domain.TicketState{Name: "Closed", IsFinal: true, FlowOrder: 6},
	}
	require.NoError(t, db.Create(&f.technician).Error)
	require.NoError(t, db.Create(&f.client).Error)
	require.NoError(t, db.Create(&f.taskType).Error)
	require.NoError(t, db.Create(&f.workMode).Error)
	require.NoError(t, db.Create(&f.priority).Error)
	require.NoError(t, db.Create(&f.openState).Error)
	require.NoError(t, db.Create(&f.finalState).Error)

	technicianRepo := repository.NewTechnicianRepository(db)
	clientRepo := repository.NewClientRepository(db)
	service := NewService(
		repository.NewTicketRepository(db),
		repository.NewActivityRepository(db),
		repository.NewCatalogRepository(db),
		clientRepo,
		technicianRepo,
	)
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	f.router = router
	return f
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (f *handlerFixture) createTicket(t *testing.T, number string, technicianID *int64, stateID int64) Response {
	t.Helper()
	w := performRequest(f.router, http.MethodPost, "/api/v1/tickets", gin.H{
		"number":          number,
		"client_id":       f.client.ID,
		"technician_id":   technicianID,
		"task_type_id":    f.taskType.ID,
		"priority_id":     f.priority.ID,
		"state_id":        stateID,
		"title":           "Ticket " + number,
		"estimated_hours": 2.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool     `json:"success"`
		Data    Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestCreateTicket_AssignedTimestampOnWire(t *testing.T) {
	f := setupRouter(t)

	created := f.createTicket(t, "TCK-0001", &f.technician.ID, f.openState.ID)
	assert.NotEmpty(t, created.AssignedAt)
	assert.Empty(t, created.ClosedAt)

	// wire format is date and time without zone
	_, err := time.Parse("2006-01-02 15:04:05", created.AssignedAt)
	assert.NoError(t, err)
}

func TestCreateTicket_DuplicateNumberConflict(t *testing.T) {
	f := setupRouter(t)
	f.createTicket(t, "TCK-0002", nil, f.openState.ID)

	w := performRequest(f.router, http.MethodPost, "/api/v1/tickets", gin.H{
		"number":       "TCK-0002",
		"client_id":    f.client.ID,
		"task_type_id": f.taskType.ID,
		"priority_id":  f.priority.ID,
		"state_id":     f.openState.ID,
		"title":        "Duplicate",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestGetTicket_DetailAndOpenFlag(t *testing.T) {
	f := setupRouter(t)
	open := f.createTicket(t, "TCK-0003", nil, f.openState.ID)
	closed := f.createTicket(t, "TCK-0004", nil, f.finalState.ID)

	w := performRequest(f.router, http.MethodGet, fmt.Sprintf("/api/v1/tickets/%d", open.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data DetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Open)
	assert.Equal(t, "Acme SL", resp.Data.ClientName)
	assert.Equal(t, domain.UnassignedLabel, resp.Data.TechnicianName)

	w = performRequest(f.router, http.MethodGet, fmt.Sprintf("/api/v1/tickets/%d", closed.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Open)
	assert.NotEmpty(t, resp.Data.ClosedAt)
}

func TestGetTicket_NotFound(t *testing.T) {
	f := setupRouter(t)

	w := performRequest(f.router, http.MethodGet, "/api/v1/tickets/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestAddActivity_BadDateRejected(t *testing.T) {
	f := setupRouter(t)
	created := f.createTicket(t, "TCK-0005", &f.technician.ID, f.openState.ID)

	w := performRequest(f.router, http.MethodPost, fmt.Sprintf("/api/v1/tickets/%d/activities", created.ID), gin.H{
		"technician_id": f.technician.ID,
		"work_mode_id":  f.workMode.ID,
		"date":          "15/01/2026",
		"hours":         2.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestActivityLifecycle(t *testing.T) {
	f := setupRouter(t)
	created := f.createTicket(t, "TCK-0006", &f.technician.ID, f.openState.ID)
	base := fmt.Sprintf("/api/v1/tickets/%d/activities", created.ID)

	w := performRequest(f.router, http.MethodPost, base, gin.H{
		"technician_id": f.technician.ID,
		"work_mode_id":  f.workMode.ID,
		"date":          "2026-01-15",
		"hours":         2.0,
		"description":   "Replaced toner",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var createResp struct {
		Data ActivityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "2026-01-15", createResp.Data.Date)

	w = performRequest(f.router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []ActivityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, "Dora Bermudez", listResp.Data[0].TechnicianName)
	assert.Equal(t, "Remote", listResp.Data[0].WorkMode)

	w = performRequest(f.router, http.MethodDelete, fmt.Sprintf("%s/%d", base, createResp.Data.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(f.router, http.MethodGet, base, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)
}

func TestDeleteTicket_RemovesActivities(t *testing.T) {
	f := setupRouter(t)
	created := f.createTicket(t, "TCK-0007", &f.technician.ID, f.openState.ID)
	base := fmt.Sprintf("/api/v1/tickets/%d", created.ID)

	w := performRequest(f.router, http.MethodPost, base+"/activities", gin.H{
		"technician_id": f.technician.ID,
		"work_mode_id":  f.workMode.ID,
		"date":          "2026-02-01",
		"hours":         1.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(f.router, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(f.router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(f.router, http.MethodGet, base+"/activities", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
