package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sk25649/pdf-api-landing-page/internal/billing"
)

type CheckoutRequest struct {
	PriceID  string `json:"priceId" validate:"required"`
	PlanName string `json:"planName" validate:"required,oneof=starter pro business"`
}

// handleCheckout creates a Stripe checkout session for the authenticated
// user and returns the redirect URL.
func (s *Server) handleCheckout(c *fiber.Ctx) error {
	userID, email := userClaims(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid checkout request",
			"details": validationDetails(err),
		})
	}

	url, err := s.billing.Checkout(c.Context(), userID, email, req.PriceID, req.PlanName)
	if err != nil {
		s.logger.Error("checkout session creation failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create checkout session",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}

// handleStripeWebhook receives signed subscription lifecycle events.
// Signature verification happens before any state change; processing
// failures return 500 and rely on Stripe's redelivery, never local retry.
func (s *Server) handleStripeWebhook(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No signature",
		})
	}

	event, err := s.billing.VerifyEvent(c.Body(), signature)
	if err != nil {
		s.logger.Error("webhook signature verification failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid signature",
		})
	}

	s.logger.Info("received stripe webhook", "type", event.Type)

	if err := s.billing.HandleEvent(c.Context(), event); err != nil {
		if errors.Is(err, billing.ErrMissingMetadata) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing metadata",
			})
		}
		s.logger.Error("webhook processing failed", "type", event.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Webhook processing failed",
		})
	}

	return c.JSON(fiber.Map{"received": true})
}
