package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signWebhook produces a Stripe-Signature header for the test secret.
func signWebhook(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestHandleStripeWebhookNoSignature(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(`{}`))
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeWebhookInvalidSignature(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeWebhookCheckoutCompleted(t *testing.T) {
	server, sqlMock, _, _ := setupTestServer(t)

	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"customer": "cus_123",
				"metadata": {"user_id": "user-1", "plan_name": "pro"}
			}
		}
	}`)

	sqlMock.ExpectExec("INSERT INTO user_plans").
		WithArgs("user-1", "pro", "cus_123").
		WillReturnResult(sqlmock.NewResult(1, 1))

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", signWebhook(payload, "whsec_test"))
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleStripeWebhookMissingMetadata(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	payload := []byte(`{
		"id": "evt_2",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_2", "customer": "cus_123", "metadata": {}}}
	}`)

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", signWebhook(payload, "whsec_test"))
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeWebhookSubscriptionDeleted(t *testing.T) {
	server, sqlMock, _, _ := setupTestServer(t)

	payload := []byte(`{
		"id": "evt_3",
		"type": "customer.subscription.deleted",
		"data": {"object": {"id": "sub_1", "customer": "cus_123"}}
	}`)

	sqlMock.ExpectExec("UPDATE user_plans SET plan").
		WithArgs("free", "cus_123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", signWebhook(payload, "whsec_test"))
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleStripeWebhookProcessingFailure(t *testing.T) {
	server, sqlMock, _, _ := setupTestServer(t)

	payload := []byte(`{
		"id": "evt_4",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_4",
				"customer": "cus_123",
				"metadata": {"user_id": "user-1", "plan_name": "pro"}
			}
		}
	}`)

	sqlMock.ExpectExec("INSERT INTO user_plans").
		WillReturnError(assert.AnError)

	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", signWebhook(payload, "whsec_test"))
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleCheckoutValidation(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := jsonRequest(t, "POST", "/api/checkout", map[string]string{
		"priceId":  "price_pro",
		"planName": "enterprise",
	})
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
