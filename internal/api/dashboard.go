package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sk25649/pdf-api-landing-page/internal/plans"
)

// handleDashboard returns the signed-in user's plan, active API key, and
// current-month usage next to the plan limit. Usage is display-only here;
// enforcement lives in the API gateway.
func (s *Server) handleDashboard(c *fiber.Ctx) error {
	userID, _ := userClaims(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	plan, err := s.billing.Plan(c.Context(), userID)
	if err != nil {
		s.logger.Error("failed to fetch user plan", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	usage, err := s.stats.Usage(c.Context(), userID, time.Now())
	if err != nil {
		s.logger.Error("failed to fetch usage", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	response := fiber.Map{
		"plan": fiber.Map{
			"name":       plan.Plan,
			"display":    plans.Format(plan.Plan),
			"price":      plans.Price(plan.Plan),
			"features":   plans.Features(plan.Plan),
			"updated_at": plan.UpdatedAt,
		},
		"usage": fiber.Map{
			"used":  usage,
			"limit": plans.Limit(plan.Plan),
		},
	}

	key, ok, err := s.keys.Active(c.Context(), userID)
	if err != nil {
		s.logger.Error("failed to fetch api key", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	if ok {
		response["api_key"] = fiber.Map{
			"key":        key.Key,
			"created_at": key.CreatedAt,
		}
	}

	return c.JSON(response)
}

// handleRegenerateKey rotates the user's API key: the old key is revoked
// and a fresh one inserted, keeping the audit trail append-only.
func (s *Server) handleRegenerateKey(c *fiber.Ctx) error {
	userID, _ := userClaims(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	record, err := s.keys.Regenerate(c.Context(), userID)
	if err != nil {
		s.logger.Error("key regeneration failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to regenerate key",
		})
	}

	s.logger.Info("api key regenerated", "user_id", userID, "key_id", record.ID)

	return c.JSON(fiber.Map{
		"key":        record.Key,
		"created_at": record.CreatedAt,
	})
}

// handlePlans serves the static plan table for the pricing page.
func (s *Server) handlePlans(c *fiber.Ctx) error {
	tiers := make([]fiber.Map, 0, len(plans.Names()))
	for _, name := range plans.Names() {
		tiers = append(tiers, fiber.Map{
			"name":     name,
			"display":  plans.Format(name),
			"limit":    plans.Limit(name),
			"price":    plans.Price(name),
			"features": plans.Features(name),
		})
	}
	return c.JSON(fiber.Map{"plans": tiers})
}
