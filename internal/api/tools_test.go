package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sk25649/pdf-api-landing-page/internal/documents"
)

func testInvoice() documents.Invoice {
	return documents.Invoice{
		InvoiceNumber: "INV-001",
		InvoiceDate:   "2024-03-01",
		DueDate:       "2024-03-31",
		CompanyName:   "Acme Corp",
		ClientName:    "Globex Inc",
		TaxRate:       10,
		LineItems: []documents.LineItem{
			{Description: "Design work", Quantity: 2, UnitPrice: 50},
			{Description: "Development", Quantity: 1, UnitPrice: 100},
		},
	}
}

func TestHandleInvoicePDF(t *testing.T) {
	server, _, miniRedis, renderer := setupTestServer(t)

	renderer.On("GeneratePDF", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return([]byte("%PDF-1.4 fake"), nil)

	req := jsonRequest(t, "POST", "/api/tools/invoice", testInvoice())
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice-INV-001.pdf"`, resp.Header.Get("Content-Disposition"))

	count, err := miniRedis.Get("invoices_created")
	require.NoError(t, err)
	assert.Equal(t, "1", count)

	renderer.AssertExpectations(t)
}

func TestHandleInvoicePDFValidation(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	inv := testInvoice()
	inv.LineItems = nil

	req := jsonRequest(t, "POST", "/api/tools/invoice", inv)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Invalid invoice data", result.Error)
	require.NotEmpty(t, result.Details)
	assert.Equal(t, "min", result.Details[0].Rule)
}

func TestHandleInvoicePDFRendererFailure(t *testing.T) {
	server, _, _, renderer := setupTestServer(t)

	renderer.On("GeneratePDF", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return([]byte(nil), assert.AnError)

	req := jsonRequest(t, "POST", "/api/tools/invoice", testInvoice())
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleInvoicePreview(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := jsonRequest(t, "POST", "/api/tools/invoice/preview", testInvoice())
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Totals documents.Totals `json:"totals"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 200.0, result.Totals.Subtotal)
	assert.Equal(t, 20.0, result.Totals.Tax)
	assert.Equal(t, 220.0, result.Totals.Total)
}

func TestHandleResumePDF(t *testing.T) {
	server, _, miniRedis, renderer := setupTestServer(t)

	renderer.On("GeneratePDF", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return([]byte("%PDF-1.4 fake"), nil)

	resume := documents.Resume{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Summary:  "Analytical engine programmer.",
	}

	req := jsonRequest(t, "POST", "/api/tools/resume", resume)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="resume-ada-lovelace.pdf"`, resp.Header.Get("Content-Disposition"))

	count, err := miniRedis.Get("resumes_created")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestHandleOGImage(t *testing.T) {
	server, _, miniRedis, renderer := setupTestServer(t)

	renderer.On("CaptureScreenshot", mock.Anything, "https://example.com/blog/post", mock.Anything).
		Return([]byte("\x89PNG fake"), nil)

	req := jsonRequest(t, "POST", "/api/tools/og-image", map[string]string{
		"url": "https://example.com/blog/post",
	})
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	count, err := miniRedis.Get("og_images_generated")
	require.NoError(t, err)
	assert.Equal(t, "1", count)

	renderer.AssertExpectations(t)
}

func TestHandleOGImageInvalidURL(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := jsonRequest(t, "POST", "/api/tools/og-image", map[string]string{"url": "not a url"})
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleTaxRates(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/api/tools/tax-rates", nil)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Options []struct {
			Label string  `json:"label"`
			Value string  `json:"value"`
			Rate  float64 `json:"rate"`
		} `json:"options"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.GreaterOrEqual(t, len(result.Options), 50)
}
