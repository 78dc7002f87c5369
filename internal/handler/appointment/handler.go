package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinickit/agenda-api/internal/handler"
	"github.com/clinickit/agenda-api/internal/model"
	"github.com/clinickit/agenda-api/internal/schedule"
	"github.com/clinickit/agenda-api/internal/service/appointment"
	apperrors "github.com/clinickit/agenda-api/pkg/errors"
	"github.com/clinickit/agenda-api/pkg/validator"
)

type Handler struct {
	service  *appointment.Service
	validate *validator.Validator
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	key := schedule.FilterKey(c.DefaultQuery("filter", string(schedule.FilterAll)))

	views, err := h.service.ListView(c.Request.Context(), key)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(views))
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Overview(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	apt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		handler.RespondError(c, err)
		return
	}

	apt, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	confirmed := c.Query("confirm") == "true"

	if err := h.service.DeleteAppointment(c.Request.Context(), id, confirmed); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("deletion requires confirm=true"))
			return
		}
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/stats", h.GetStats)
		appointments.GET("/:id", h.GetAppointment)
	}
}

// RegisterMutatingRoutes registers the routes that change state; the router
// may wrap the group with the bearer-token guard.
func (h *Handler) RegisterMutatingRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.PATCH("/:id/status", h.UpdateStatus)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
