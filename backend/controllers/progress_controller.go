package controllers

import (
	"camp-portal/backend/middleware"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProgressController struct {
	Dashboard *services.DashboardService
	Log       *zap.Logger
}

func NewProgressController(dashboard *services.DashboardService, log *zap.Logger) *ProgressController {
	return &ProgressController{Dashboard: dashboard, Log: log}
}

// GetDashboard godoc
// @Summary Get dashboard progress
// @Description Returns track cards, overall progress and achievements
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	overview, err := pc.Dashboard.Dashboard(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, pc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, overview)
}
