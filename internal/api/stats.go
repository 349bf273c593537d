package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sk25649/pdf-api-landing-page/internal/stats"
)

// handleStats serves the public document counters for the landing page.
func (s *Server) handleStats(c *fiber.Ctx) error {
	all, err := s.stats.All(c.Context())
	if err != nil {
		s.logger.Error("failed to fetch stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stats",
		})
	}

	response := fiber.Map{}
	var total int64
	for key, count := range all {
		response[string(key)] = count
		total += count
	}
	response["total_documents"] = total

	return c.JSON(response)
}

type TrackRequest struct {
	Event string `json:"event"`
}

// handleTrack records a signup funnel event.
func (s *Server) handleTrack(c *fiber.Ctx) error {
	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !stats.IsFunnelEvent(req.Event) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event",
		})
	}

	if err := s.stats.TrackFunnel(c.Context(), req.Event); err != nil {
		s.logger.Error("failed to track event", "event", req.Event, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to track event",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
