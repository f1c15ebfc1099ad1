package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/middleware"
)

// relanceHandler handles reminder templates, rules and manual engine runs.
type relanceHandler struct {
	relanceService portssvc.RelanceSvcFacade
}

func newRelanceHandler(rs portssvc.RelanceSvcFacade) *relanceHandler {
	return &relanceHandler{relanceService: rs}
}

func registerRelanceRoutes(rg *gin.RouterGroup, relanceService portssvc.RelanceSvcFacade) {
	h := newRelanceHandler(relanceService)

	relances := rg.Group("/relances")
	{
		templates := relances.Group("/templates")
		{
			templates.POST("", h.createTemplate)
			templates.GET("", h.listTemplates)
			templates.GET("/:templateID", h.getTemplate)
			templates.PUT("/:templateID", h.updateTemplate)
			templates.DELETE("/:templateID", h.deleteTemplate)
		}

		rules := relances.Group("/rules")
		{
			rules.POST("", h.createRule)
			rules.GET("", h.listRules)
			rules.GET("/:ruleID", h.getRule)
			rules.PUT("/:ruleID", h.updateRule)
			rules.DELETE("/:ruleID", h.deleteRule)
		}

		relances.POST("/run", h.runRelances)
	}
}

// createTemplate godoc
// @Summary Create a reminder template
// @Tags relances
// @Accept json
// @Produce json
// @Param template body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /relances/templates [post]
// @Security BearerAuth
func (h *relanceHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	template, err := h.relanceService.CreateTemplate(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// listTemplates godoc
// @Summary List reminder templates
// @Tags relances
// @Produce json
// @Success 200 {array} dto.TemplateResponse
// @Router /relances/templates [get]
// @Security BearerAuth
func (h *relanceHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.relanceService.ListTemplates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTemplateResponse(templates))
}

// getTemplate godoc
// @Summary Get a reminder template
// @Tags relances
// @Produce json
// @Param templateID path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} map[string]string "Template not found"
// @Router /relances/templates/{templateID} [get]
// @Security BearerAuth
func (h *relanceHandler) getTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	template, err := h.relanceService.GetTemplateByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to get template", slog.String("error", err.Error()), slog.String("template_id", templateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// updateTemplate godoc
// @Summary Update a reminder template
// @Description Updates a template's name, subject, content, variables or active flag. The type is immutable.
// @Tags relances
// @Accept json
// @Produce json
// @Param templateID path string true "Template ID"
// @Param template body dto.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} dto.TemplateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /relances/templates/{templateID} [put]
// @Security BearerAuth
func (h *relanceHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	template, err := h.relanceService.UpdateTemplate(c.Request.Context(), templateID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		default:
			logger.Error("Failed to update template", slog.String("error", err.Error()), slog.String("template_id", templateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// deleteTemplate godoc
// @Summary Delete a reminder template
// @Description Removes a template unless a rule still references it
// @Tags relances
// @Produce json
// @Param templateID path string true "Template ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Template still referenced by rules"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /relances/templates/{templateID} [delete]
// @Security BearerAuth
func (h *relanceHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.relanceService.DeleteTemplate(c.Request.Context(), templateID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template is still referenced by one or more rules"})
		default:
			logger.Error("Failed to delete template", slog.String("error", err.Error()), slog.String("template_id", templateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// createRule godoc
// @Summary Create a reminder rule
// @Description Creates a rule that fires when an invoice is exactly N days overdue
// @Tags relances
// @Accept json
// @Produce json
// @Param rule body dto.CreateRuleRequest true "Rule details"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Referenced template not found"
// @Router /relances/rules [post]
// @Security BearerAuth
func (h *relanceHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	rule, err := h.relanceService.CreateRule(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Referenced template not found"})
		default:
			logger.Error("Failed to create rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

// listRules godoc
// @Summary List reminder rules
// @Tags relances
// @Produce json
// @Success 200 {array} dto.RuleResponse
// @Router /relances/rules [get]
// @Security BearerAuth
func (h *relanceHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rules, err := h.relanceService.ListRules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRuleResponse(rules))
}

// getRule godoc
// @Summary Get a reminder rule
// @Tags relances
// @Produce json
// @Param ruleID path string true "Rule ID"
// @Success 200 {object} dto.RuleResponse
// @Failure 404 {object} map[string]string "Rule not found"
// @Router /relances/rules/{ruleID} [get]
// @Security BearerAuth
func (h *relanceHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	rule, err := h.relanceService.GetRuleByID(c.Request.Context(), ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else {
			logger.Error("Failed to get rule", slog.String("error", err.Error()), slog.String("rule_id", ruleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a reminder rule
// @Description Updates a rule's name, trigger days, template, status target or active flag. The action is immutable.
// @Tags relances
// @Accept json
// @Produce json
// @Param ruleID path string true "Rule ID"
// @Param rule body dto.UpdateRuleRequest true "Fields to update"
// @Success 200 {object} dto.RuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Rule not found"
// @Router /relances/rules/{ruleID} [put]
// @Security BearerAuth
func (h *relanceHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	rule, err := h.relanceService.UpdateRule(c.Request.Context(), ruleID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		default:
			logger.Error("Failed to update rule", slog.String("error", err.Error()), slog.String("rule_id", ruleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// deleteRule godoc
// @Summary Delete a reminder rule
// @Tags relances
// @Produce json
// @Param ruleID path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Rule not found"
// @Router /relances/rules/{ruleID} [delete]
// @Security BearerAuth
func (h *relanceHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.relanceService.DeleteRule(c.Request.Context(), ruleID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else {
			logger.Error("Failed to delete rule", slog.String("error", err.Error()), slog.String("rule_id", ruleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// runRelances godoc
// @Summary Run the reminder engine now
// @Description Scans overdue invoices, fires every active rule whose trigger day matches exactly, and returns the run summary
// @Tags relances
// @Produce json
// @Success 200 {object} dto.RelanceRunResponse
// @Router /relances/run [post]
// @Security BearerAuth
func (h *relanceHandler) runRelances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.relanceService.ProcessReminders(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Reminder run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reminder run failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRelanceRunResponse(result))
}
