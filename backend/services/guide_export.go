package services

import (
	"embed"
	"fmt"
	"io"

	"camp-portal/backend/catalog"

	"github.com/go-pdf/fpdf"
)

const exportFontFamily = "guide"

//go:embed fonts/DejaVuSansCondensed.ttf fonts/DejaVuSansCondensed-Bold.ttf
var exportFonts embed.FS

// GuideExporter renders the guide to PDF with an embedded Cyrillic font.
// A non-empty fontPath replaces it with a TTF from disk for both weights.
type GuideExporter struct {
	catalog  *catalog.Catalog
	fontPath string
}

func NewGuideExporter(cat *catalog.Catalog, fontPath string) *GuideExporter {
	return &GuideExporter{catalog: cat, fontPath: fontPath}
}

func (e *GuideExporter) Export(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)

	if err := e.loadFonts(pdf); err != nil {
		return err
	}

	guide := e.catalog.Guide
	pdf.SetTitle(guide.Title, true)
	pdf.AddPage()

	pdf.SetFont(exportFontFamily, "B", 20)
	pdf.MultiCell(0, 10, guide.Title, "", "L", false)
	if guide.Description != "" {
		pdf.SetFont(exportFontFamily, "", 11)
		pdf.MultiCell(0, 6, guide.Description, "", "L", false)
	}

	for i, section := range guide.Sections {
		pdf.Ln(6)
		pdf.SetFont(exportFontFamily, "B", 15)
		pdf.MultiCell(0, 8, fmt.Sprintf("%d. %s", i+1, section.Title), "", "L", false)

		if section.Intro != "" {
			pdf.SetFont(exportFontFamily, "", 11)
			pdf.MultiCell(0, 6, section.Intro, "", "L", false)
		}
		for _, sub := range section.Subsections {
			pdf.Ln(2)
			pdf.SetFont(exportFontFamily, "B", 12)
			pdf.MultiCell(0, 6, sub.Title, "", "L", false)
			pdf.SetFont(exportFontFamily, "", 11)
			pdf.MultiCell(0, 6, sub.Content, "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render guide pdf: %w", err)
	}
	return nil
}

func (e *GuideExporter) loadFonts(pdf *fpdf.Fpdf) error {
	if e.fontPath != "" {
		pdf.AddUTF8Font(exportFontFamily, "", e.fontPath)
		pdf.AddUTF8Font(exportFontFamily, "B", e.fontPath)
	} else {
		for style, name := range map[string]string{
			"":  "fonts/DejaVuSansCondensed.ttf",
			"B": "fonts/DejaVuSansCondensed-Bold.ttf",
		} {
			data, err := exportFonts.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read embedded font: %w", err)
			}
			pdf.AddUTF8FontFromBytes(exportFontFamily, style, data)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load pdf font: %w", err)
	}
	return nil
}
