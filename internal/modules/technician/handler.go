package technician

import (
	"net/http"
	"strconv"

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
	rg.GET("/technicians", h.List)
	rg.GET("/technicians/options", h.Options)
	rg.GET("/technicians/:id", h.Get)
	rg.POST("/technicians", h.Create)
	rg.PUT("/technicians/:id", h.Update)
	rg.DELETE("/technicians/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hireDate, err := domain.ParseDate(req.HireDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hire_date must be YYYY-MM-DD")
		return
	}

	t, err := h.service.Create(c.Request.Context(), CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Login:     req.Login,
		Password:  req.Password,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		HireDate:  hireDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(t))
}

func (h *Handler) List(c *gin.Context) {
	technicians, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponseList(technicians))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(t))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hireDate, err := domain.ParseDate(req.HireDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hire_date must be YYYY-MM-DD")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Login:     req.Login,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		HireDate:  hireDate,
		Active:    *req.Active,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
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

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Technician not found")
	case ErrDuplicate:
		response.Error(c, http.StatusConflict, "CONFLICT", "Could not save technician")
	case ErrInUse:
		response.Error(c, http.StatusConflict, "CONFLICT", "Could not delete technician")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
