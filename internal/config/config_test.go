package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "sb_test")
	t.Setenv("DOCAPI_KEY", "dk_test")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	t.Setenv("STRIPE_STARTER_PRICE_ID", "price_starter")
	t.Setenv("STRIPE_PRO_PRICE_ID", "price_pro")
	t.Setenv("STRIPE_BUSINESS_PRICE_ID", "price_business")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "https://api.docapi.co", cfg.Render.BaseURL)
	assert.Equal(t, "dk_test", cfg.Render.APIKey)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DOCAPI_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCAPI_KEY")
	assert.Contains(t, err.Error(), "STRIPE_WEBHOOK_SECRET")
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestPriceToPlan(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	table := cfg.Stripe.PriceToPlan()
	assert.Equal(t, "starter", table["price_starter"])
	assert.Equal(t, "pro", table["price_pro"])
	assert.Equal(t, "business", table["price_business"])
	_, ok := table["price_unknown"]
	assert.False(t, ok)
}
