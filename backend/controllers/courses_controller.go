package controllers

import (
	"camp-portal/backend/middleware"
	"camp-portal/backend/models"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CoursesController struct {
	Progress *services.ProgressService
	Log      *zap.Logger
}

func NewCoursesController(progress *services.ProgressService, log *zap.Logger) *CoursesController {
	return &CoursesController{Progress: progress, Log: log}
}

// GetCourse godoc
// @Summary Get course
// @Description Returns course items with completed and unlocked flags
// @Tags courses
// @Produce json
// @Param type path string true "Course type" Enums(mini_course, webinar)
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{type} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	view, err := cc.Progress.Course(c.UserContext(), middleware.CurrentUserID(c), courseType(c))
	if err != nil {
		return respondError(c, cc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}

// GetItem godoc
// @Summary Get course item
// @Description Returns one lesson or webinar. Locked lessons return 403.
// @Tags courses
// @Produce json
// @Param type path string true "Course type"
// @Param itemId path string true "Item ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{type}/items/{itemId} [get]
func (cc *CoursesController) GetItem(c *fiber.Ctx) error {
	view, err := cc.Progress.Item(c.UserContext(), middleware.CurrentUserID(c), courseType(c), c.Params("itemId"))
	if err != nil {
		return respondError(c, cc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}

// CompleteItem godoc
// @Summary Mark item completed
// @Description Records completion and returns the refreshed course progress
// @Tags courses
// @Produce json
// @Param type path string true "Course type"
// @Param itemId path string true "Item ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{type}/items/{itemId}/complete [post]
func (cc *CoursesController) CompleteItem(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	ct := courseType(c)

	record, err := cc.Progress.MarkComplete(c.UserContext(), userID, ct, c.Params("itemId"))
	if err != nil {
		return respondError(c, cc.Log, err)
	}

	progress, err := cc.Progress.Aggregate(c.UserContext(), userID, ct)
	if err != nil {
		return respondError(c, cc.Log, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"record":   record,
		"progress": progress,
	})
}

func courseType(c *fiber.Ctx) models.CourseType {
	return models.CourseType(c.Params("type"))
}
