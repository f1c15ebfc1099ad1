package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/middleware"
)

// communicationHandler handles manually recorded communications.
type communicationHandler struct {
	communicationService portssvc.CommunicationSvcFacade
}

func newCommunicationHandler(cs portssvc.CommunicationSvcFacade) *communicationHandler {
	return &communicationHandler{communicationService: cs}
}

func registerCommunicationRoutes(rg *gin.RouterGroup, communicationService portssvc.CommunicationSvcFacade) {
	h := newCommunicationHandler(communicationService)

	comms := rg.Group("/communications")
	{
		comms.POST("", h.createCommunication)
		comms.GET("/:communicationID", h.getCommunication)
	}
}

// createCommunication godoc
// @Summary Record a communication
// @Description Records a manual communication with a client. A future scheduledAt marks it SCHEDULED, otherwise it is SENT now.
// @Tags communications
// @Accept json
// @Produce json
// @Param communication body dto.CreateCommunicationRequest true "Communication details"
// @Success 201 {object} dto.CommunicationResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Client not found"
// @Router /communications [post]
// @Security BearerAuth
func (h *communicationHandler) createCommunication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCommunication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	comm, err := h.communicationService.CreateCommunication(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		default:
			logger.Error("Failed to record communication", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record communication"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommunicationResponse(comm))
}

// getCommunication godoc
// @Summary Get a communication
// @Tags communications
// @Produce json
// @Param communicationID path string true "Communication ID"
// @Success 200 {object} dto.CommunicationResponse
// @Failure 404 {object} map[string]string "Communication not found"
// @Router /communications/{communicationID} [get]
// @Security BearerAuth
func (h *communicationHandler) getCommunication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	communicationID := c.Param("communicationID")

	comm, err := h.communicationService.GetCommunicationByID(c.Request.Context(), communicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Communication not found"})
		} else {
			logger.Error("Failed to get communication", slog.String("error", err.Error()), slog.String("communication_id", communicationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get communication"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCommunicationResponse(comm))
}
