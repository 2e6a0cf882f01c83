package ticket

import (
	"net/http"
	"strconv"
	"time"

	"helpdesk/internal/domain"
	"helpdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tickets", h.List)
	rg.GET("/tickets/options", h.Options)
	rg.GET("/tickets/:id", h.Get)
	rg.POST("/tickets", h.Create)
	rg.PUT("/tickets/:id", h.Update)
	rg.DELETE("/tickets/:id", h.Delete)

	rg.GET("/tickets/:id/activities", h.ListActivities)
	rg.POST("/tickets/:id/activities", h.AddActivity)
	rg.DELETE("/tickets/:id/activities/:activityID", h.DeleteActivity)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), CreateInput{
		Number:         req.Number,
		ClientID:       req.ClientID,
		TechnicianID:   req.TechnicianID,
		TaskTypeID:     req.TaskTypeID,
		PriorityID:     req.PriorityID,
		StateID:        req.StateID,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(t))
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRowResponses(rows))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	d, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toDetailResponse(d))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	assignedAt, ok := timestampField(c, req.AssignedAt, "assigned_at")
	if !ok {
		return
	}
	closedAt, ok := timestampField(c, req.ClosedAt, "closed_at")
	if !ok {
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, UpdateInput{
		Number:         req.Number,
		ClientID:       req.ClientID,
		TechnicianID:   req.TechnicianID,
		TaskTypeID:     req.TaskTypeID,
		PriorityID:     req.PriorityID,
		StateID:        req.StateID,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		AssignedAt:     assignedAt,
		ClosedAt:       closedAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Options(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) AddActivity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	a, err := h.service.AddActivity(c.Request.Context(), id, ActivityInput{
		TechnicianID: req.TechnicianID,
		WorkModeID:   req.WorkModeID,
		Date:         date,
		Hours:        req.Hours,
		Description:  req.Description,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ActivityResponse{
		ID:          a.ID,
		TicketID:    a.TicketID,
		Date:        domain.FormatDate(a.Date),
		Hours:       a.Hours,
		Description: a.Description,
		Notes:       a.Notes,
		CreatedAt:   domain.FormatDateTime(a.CreatedAt),
	})
}

func (h *Handler) ListActivities(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.service.Activities(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toActivityResponses(rows))
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	ticketID, ok := idParam(c, "id")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityID")
	if !ok {
		return
	}
	if err := h.service.DeleteActivity(c.Request.Context(), ticketID, activityID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// timestampField parses an optional wire timestamp; the empty string means
// unset. Unparsable input is rejected before the service runs.
func timestampField(c *gin.Context, value, name string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := domain.ParseDateTime(value)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be YYYY-MM-DD HH:MM:SS")
		return nil, false
	}
	return &t, true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found")
	case ErrActivityNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Activity record not found")
	case ErrDuplicate:
		response.Error(c, http.StatusConflict, "CONFLICT", "Could not save ticket")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
