package catalog

import (
	"net/http"

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
	rg.GET("/catalogs", h.All)
}

func (h *Handler) All(c *gin.Context) {
	catalogs, err := h.service.All(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, catalogs)
}
