// Package billing owns the Stripe integration: checkout session creation
// and the webhook-driven plan state machine over user_plans.
package billing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/sk25649/pdf-api-landing-page/internal/models"
	"github.com/sk25649/pdf-api-landing-page/internal/plans"
)

// ErrMissingMetadata marks a checkout event without the user_id/plan_name
// metadata attached at session creation. Surfaced as a 400 so Stripe does
// not redeliver a payload we can never process.
var ErrMissingMetadata = errors.New("missing user_id or plan_name metadata in checkout session")

// Config carries the Stripe credentials and the static price-to-plan table.
type Config struct {
	SecretKey     string
	WebhookSecret string
	SiteURL       string

	// PriceToPlan maps Stripe price IDs to plan tiers. An unmapped price
	// resolves to the free tier; that is deliberate policy, not an error.
	PriceToPlan map[string]string
}

type Service struct {
	db     *sqlx.DB
	cfg    Config
	logger *slog.Logger
}

func NewService(db *sqlx.DB, cfg Config, logger *slog.Logger) *Service {
	stripe.Key = cfg.SecretKey
	return &Service{db: db, cfg: cfg, logger: logger}
}

// PlanForPrice resolves a Stripe price ID through the static mapping,
// defaulting to free for anything unrecognized.
func (s *Service) PlanForPrice(priceID string) string {
	if plan, ok := s.cfg.PriceToPlan[priceID]; ok {
		return plan
	}
	return plans.Free
}

// Checkout creates a Stripe subscription checkout session carrying the
// user and plan in metadata, reusing the stored Stripe customer when the
// user already has one.
func (s *Service) Checkout(ctx context.Context, userID, email, priceID, planName string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(s.cfg.SiteURL + "/dashboard?checkout=success"),
		CancelURL:  stripe.String(s.cfg.SiteURL + "/pricing?checkout=cancelled"),
	}
	params.AddMetadata("user_id", userID)
	params.AddMetadata("plan_name", planName)
	params.SetIdempotencyKey(uuid.NewString())

	var customerID sql.NullString
	err := s.db.GetContext(ctx, &customerID,
		"SELECT stripe_customer_id FROM user_plans WHERE user_id = $1", userID)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to look up stripe customer: %w", err)
	}
	if customerID.Valid && customerID.String != "" {
		params.Customer = stripe.String(customerID.String)
	} else {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	if sess.URL == "" {
		return "", fmt.Errorf("checkout session %s has no redirect URL", sess.ID)
	}
	return sess.URL, nil
}

// VerifyEvent checks the webhook signature against the shared secret and
// returns the typed event. No state changes before this succeeds.
// Webhook events arrive pinned to the Stripe account's API version, which
// rarely matches the SDK's, so the version mismatch check is disabled.
func (s *Service) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, sigHeader, s.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}

// HandleEvent runs one webhook event through the plan state machine.
// All writes are idempotent upserts; Stripe's own redelivery covers
// transient database failures, so nothing retries locally.
func (s *Service) HandleEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		s.logger.Info("ignoring unhandled stripe event", "type", event.Type)
		return nil
	}
}

func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	userID := sess.Metadata["user_id"]
	planName := sess.Metadata["plan_name"]
	if userID == "" || planName == "" {
		return ErrMissingMetadata
	}

	var customerID string
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_plans (user_id, plan, stripe_customer_id, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET plan = EXCLUDED.plan, stripe_customer_id = EXCLUDED.stripe_customer_id, updated_at = NOW()`,
		userID, planName, customerID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user plan: %w", err)
	}

	s.logger.Info("checkout completed", "user_id", userID, "plan", planName)
	return nil
}

func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}
	if sub.Customer == nil {
		return fmt.Errorf("subscription event %s carries no customer", event.ID)
	}

	var priceID string
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		priceID = sub.Items.Data[0].Price.ID
	}
	if priceID == "" {
		s.logger.Error("no price ID on updated subscription", "customer", sub.Customer.ID)
		return nil
	}

	newPlan := s.PlanForPrice(priceID)
	return s.setPlanByCustomer(ctx, sub.Customer.ID, newPlan)
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}
	if sub.Customer == nil {
		return fmt.Errorf("subscription event %s carries no customer", event.ID)
	}
	return s.setPlanByCustomer(ctx, sub.Customer.ID, plans.Free)
}

func (s *Service) setPlanByCustomer(ctx context.Context, customerID, plan string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE user_plans SET plan = $1, updated_at = NOW() WHERE stripe_customer_id = $2",
		plan, customerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan for customer %s: %w", customerID, err)
	}
	s.logger.Info("plan updated from subscription event", "customer", customerID, "plan", plan)
	return nil
}

// Plan returns the user's plan record, defaulting to a synthetic free
// record when no row exists yet (the user never checked out).
func (s *Service) Plan(ctx context.Context, userID string) (models.UserPlan, error) {
	var record models.UserPlan
	err := s.db.GetContext(ctx, &record,
		"SELECT user_id, plan, stripe_customer_id, created_at, updated_at FROM user_plans WHERE user_id = $1",
		userID,
	)
	if err == sql.ErrNoRows {
		return models.UserPlan{UserID: userID, Plan: plans.Free}, nil
	}
	if err != nil {
		return models.UserPlan{}, fmt.Errorf("failed to fetch user plan: %w", err)
	}
	return record, nil
}
