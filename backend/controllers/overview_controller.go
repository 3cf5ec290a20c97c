package controllers

import (
	"camp-portal/backend/catalog"
	"camp-portal/backend/middleware"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OverviewController struct {
	Auth    *services.AuthService
	Guide   *services.GuideService
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewOverviewController(auth *services.AuthService, guide *services.GuideService, cat *catalog.Catalog, log *zap.Logger) *OverviewController {
	return &OverviewController{Auth: auth, Guide: guide, Catalog: cat, Log: log}
}

type material struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Href        string `json:"href"`
}

// Landing returns the public front page data
func (oc *OverviewController) Landing(c *fiber.Ctx) error {
	count, err := oc.Auth.RegisteredCount(c.UserContext())
	if err != nil {
		return respondError(c, oc.Log, err)
	}

	materials := make([]material, 0, len(oc.Catalog.Courses)+1)
	for _, course := range oc.Catalog.Courses {
		materials = append(materials, material{
			Key:         string(course.Type),
			Title:       course.Title,
			Description: course.Description,
			Count:       len(course.Items),
			Href:        course.Href,
		})
	}
	materials = append(materials, material{
		Key:         "guide",
		Title:       oc.Catalog.Guide.Title,
		Description: oc.Catalog.Guide.Description,
		Count:       len(oc.Catalog.Guide.Sections),
		Href:        oc.Catalog.Guide.Href,
	})

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_count":    count,
		"materials":     materials,
		"authenticated": middleware.CurrentUserID(c) != "",
	})
}

// SearchGuide matches guide sections; queries shorter than three characters return nothing
func (oc *OverviewController) SearchGuide(c *fiber.Ctx) error {
	query := c.Query("q")
	results := oc.Guide.Search(query)
	return utils.Success(c, fiber.StatusOK, results, fiber.Map{
		"query": query,
		"total": len(results),
	})
}
