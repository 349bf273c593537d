package models

import "time"

// UserPlan is a user's subscription record. It is mutated only by the
// Stripe webhook handlers and read by the dashboard.
type UserPlan struct {
	UserID           string    `json:"user_id" db:"user_id"`
	Plan             string    `json:"plan" db:"plan"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty" db:"stripe_customer_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
