package plans

import "strings"

// Plan tiers bound the monthly call allowance for the hosted API.
const (
	Free     = "free"
	Starter  = "starter"
	Pro      = "pro"
	Business = "business"
)

var limits = map[string]int{
	Free:     100,
	Starter:  1000,
	Pro:      5000,
	Business: 20000,
}

// prices are monthly USD amounts.
var prices = map[string]int{
	Free:     0,
	Starter:  19,
	Pro:      49,
	Business: 99,
}

var features = map[string][]string{
	Free:     {"100 calls/month", "Community support"},
	Starter:  {"1,000 calls/month", "Email support"},
	Pro:      {"5,000 calls/month", "Priority support"},
	Business: {"20,000 calls/month", "Dedicated support"},
}

// Names lists every tier in pricing-page order.
func Names() []string {
	return []string{Free, Starter, Pro, Business}
}

// Limit returns the monthly call allowance for a plan. Lookup is
// case-insensitive; unrecognized plans fall back to the free tier.
func Limit(plan string) int {
	if limit, ok := limits[strings.ToLower(plan)]; ok {
		return limit
	}
	return limits[Free]
}

// Price returns the monthly price in USD for a plan, defaulting to free.
func Price(plan string) int {
	if price, ok := prices[strings.ToLower(plan)]; ok {
		return price
	}
	return prices[Free]
}

// Features returns the marketing feature list for a plan, defaulting to free.
func Features(plan string) []string {
	if fs, ok := features[strings.ToLower(plan)]; ok {
		return fs
	}
	return features[Free]
}

// Format renders a plan name for display, e.g. "pro" -> "Pro".
func Format(plan string) string {
	if plan == "" {
		return ""
	}
	lower := strings.ToLower(plan)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
