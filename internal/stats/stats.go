// Package stats keeps the public document counters, the signup funnel
// counters, and the per-user monthly usage reads, all backed by Redis.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatKey names a public document counter.
type StatKey string

const (
	StatPDFsGenerated        StatKey = "pdfs_generated"
	StatScreenshotsGenerated StatKey = "screenshots_generated"
	StatInvoicesCreated      StatKey = "invoices_created"
	StatOGImagesGenerated    StatKey = "og_images_generated"
	StatResumesCreated       StatKey = "resumes_created"
)

// AllStatKeys lists every public counter in display order.
var AllStatKeys = []StatKey{
	StatPDFsGenerated,
	StatScreenshotsGenerated,
	StatInvoicesCreated,
	StatOGImagesGenerated,
	StatResumesCreated,
}

// funnelEvents is the allow-list for signup conversion tracking.
var funnelEvents = map[string]bool{
	"signup_page_view":    true,
	"signup_form_start":   true,
	"signup_submit":       true,
	"signup_success":      true,
	"signup_error":        true,
	"signup_github_click": true,
}

// IsFunnelEvent reports whether an event name is trackable.
func IsFunnelEvent(event string) bool {
	return funnelEvents[event]
}

type Service struct {
	redis  *redis.Client
	logger *slog.Logger
}

func NewService(redisClient *redis.Client, logger *slog.Logger) *Service {
	return &Service{redis: redisClient, logger: logger}
}

// Increment bumps a public counter and returns the new count. Failures are
// logged and reported as -1; counters never break the main request flow.
func (s *Service) Increment(ctx context.Context, key StatKey) int64 {
	count, err := s.redis.Incr(ctx, string(key)).Result()
	if err != nil {
		s.logger.Error("failed to increment stat", "key", key, "error", err)
		return -1
	}
	return count
}

// Get reads one public counter, treating a missing key as zero.
func (s *Service) Get(ctx context.Context, key StatKey) (int64, error) {
	count, err := s.redis.Get(ctx, string(key)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get stat %s: %w", key, err)
	}
	return count, nil
}

// All reads every public counter in one round trip.
func (s *Service) All(ctx context.Context) (map[StatKey]int64, error) {
	keys := make([]string, len(AllStatKeys))
	for i, k := range AllStatKeys {
		keys[i] = string(k)
	}

	values, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	result := make(map[StatKey]int64, len(AllStatKeys))
	for i, k := range AllStatKeys {
		result[k] = 0
		if str, ok := values[i].(string); ok {
			var n int64
			if _, err := fmt.Sscan(str, &n); err == nil {
				result[k] = n
			}
		}
	}
	return result, nil
}

// TotalDocuments sums every public counter.
func (s *Service) TotalDocuments(ctx context.Context) (int64, error) {
	all, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range all {
		total += n
	}
	return total, nil
}

// TrackFunnel bumps a signup funnel counter. Unknown events are rejected.
func (s *Service) TrackFunnel(ctx context.Context, event string) error {
	if !IsFunnelEvent(event) {
		return fmt.Errorf("invalid funnel event: %q", event)
	}
	if err := s.redis.Incr(ctx, "funnel:"+event).Err(); err != nil {
		return fmt.Errorf("failed to track funnel event %s: %w", event, err)
	}
	return nil
}

// UsageKey is the per-user per-calendar-month counter key.
func UsageKey(userID string, month time.Time) string {
	return fmt.Sprintf("usage:%s:%s", userID, month.UTC().Format("2006-01"))
}

// Usage reads a user's call count for the given month. The counter is
// written by the API gateway; here it is display-only, compared against
// the plan limit on the dashboard.
func (s *Service) Usage(ctx context.Context, userID string, month time.Time) (int64, error) {
	count, err := s.redis.Get(ctx, UsageKey(userID, month)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get usage for %s: %w", userID, err)
	}
	return count, nil
}
