package controllers

import (
	"bytes"

	"camp-portal/backend/middleware"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GuideController struct {
	Guide    *services.GuideService
	Exporter *services.GuideExporter
	Log      *zap.Logger
}

func NewGuideController(guide *services.GuideService, exporter *services.GuideExporter, log *zap.Logger) *GuideController {
	return &GuideController{Guide: guide, Exporter: exporter, Log: log}
}

func (gc *GuideController) GetGuide(c *fiber.Ctx) error {
	view, err := gc.Guide.Guide(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, gc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}

func (gc *GuideController) AddBookmark(c *fiber.Ctx) error {
	sectionID := c.Params("sectionId")
	if err := gc.Guide.AddBookmark(c.UserContext(), middleware.CurrentUserID(c), sectionID); err != nil {
		return respondError(c, gc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"section_id": sectionID, "bookmarked": true})
}

func (gc *GuideController) RemoveBookmark(c *fiber.Ctx) error {
	sectionID := c.Params("sectionId")
	if err := gc.Guide.RemoveBookmark(c.UserContext(), middleware.CurrentUserID(c), sectionID); err != nil {
		return respondError(c, gc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"section_id": sectionID, "bookmarked": false})
}

// ExportPDF streams the whole guide as one PDF file
func (gc *GuideController) ExportPDF(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := gc.Exporter.Export(&buf); err != nil {
		return respondError(c, gc.Log, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="camp-guide.pdf"`)
	return c.Send(buf.Bytes())
}
