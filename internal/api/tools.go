package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sk25649/pdf-api-landing-page/internal/documents"
	"github.com/sk25649/pdf-api-landing-page/internal/render"
	"github.com/sk25649/pdf-api-landing-page/internal/stats"
)

// handleInvoicePDF handles POST /api/tools/invoice: validates the form,
// renders the HTML and forwards it to the rendering API, streaming the
// PDF back as a download.
func (s *Server) handleInvoicePDF(c *fiber.Ctx) error {
	var inv documents.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	inv.Normalize()

	if err := s.validate.Struct(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid invoice data",
			"details": validationDetails(err),
		})
	}

	html, err := documents.RenderInvoiceHTML(&inv)
	if err != nil {
		s.logger.Error("invoice template failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate invoice",
		})
	}

	pdf, err := s.renderer.GeneratePDF(c.Context(), html, render.DefaultPDFOptions())
	if err != nil {
		s.logger.Error("PDF generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate PDF",
		})
	}

	s.stats.Increment(c.Context(), stats.StatInvoicesCreated)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, inv.InvoiceNumber))
	return c.Send(pdf)
}

// handleInvoicePreview handles POST /api/tools/invoice/preview, returning
// the computed totals for the live in-browser preview. It shares
// ComputeTotals with the PDF path so the two never diverge.
func (s *Server) handleInvoicePreview(c *fiber.Ctx) error {
	var inv documents.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	inv.Normalize()

	if err := s.validate.Struct(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid invoice data",
			"details": validationDetails(err),
		})
	}

	return c.JSON(fiber.Map{"totals": documents.ComputeTotals(&inv)})
}

// handleResumePDF handles POST /api/tools/resume.
func (s *Server) handleResumePDF(c *fiber.Ctx) error {
	var resume documents.Resume
	if err := c.BodyParser(&resume); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.validate.Struct(&resume); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid resume data",
			"details": validationDetails(err),
		})
	}

	html, err := documents.RenderResumeHTML(&resume)
	if err != nil {
		s.logger.Error("resume template failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate resume",
		})
	}

	pdf, err := s.renderer.GeneratePDF(c.Context(), html, render.DefaultPDFOptions())
	if err != nil {
		s.logger.Error("PDF generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate PDF",
		})
	}

	s.stats.Increment(c.Context(), stats.StatResumesCreated)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-%s.pdf"`, resume.FileSlug()))
	return c.Send(pdf)
}

type OGImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// handleOGImage handles POST /api/tools/og-image: captures a 1200x630
// screenshot of the given page via the rendering API.
func (s *Server) handleOGImage(c *fiber.Ctx) error {
	var req OGImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid URL provided",
		})
	}

	image, err := s.renderer.CaptureScreenshot(c.Context(), req.URL, render.OGImageOptions())
	if err != nil {
		s.logger.Error("screenshot capture failed", "url", req.URL, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to capture screenshot. Please check the URL and try again.",
		})
	}

	s.stats.Increment(c.Context(), stats.StatOGImagesGenerated)

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="og-image.png"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(image)
}

// handleTaxRates serves the state tax presets for the invoice form.
func (s *Server) handleTaxRates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"options": documents.TaxOptions})
}
