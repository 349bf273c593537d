// Package render is the client for the external document-rendering API.
// All actual PDF and screenshot work happens there; this package only
// forwards requests and streams the binary result back.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "docapi-web/1.0"

// Client is the rendering operations surface, mockable in handler tests.
type Client interface {
	GeneratePDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error)
	CaptureScreenshot(ctx context.Context, url string, opts ScreenshotOptions) ([]byte, error)
}

// Margins are the page margins for PDF output, as CSS lengths.
type Margins struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

// PDFOptions control PDF layout on the rendering API.
type PDFOptions struct {
	Format          string  `json:"format"`
	Margin          Margins `json:"margin"`
	PrintBackground bool    `json:"printBackground"`
}

// DefaultPDFOptions matches the document tools: A4 with 10mm margins.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Format:          "A4",
		Margin:          Margins{Top: "10mm", Bottom: "10mm", Left: "10mm", Right: "10mm"},
		PrintBackground: true,
	}
}

// ScreenshotOptions control screenshot capture on the rendering API.
type ScreenshotOptions struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Type     string `json:"type"`
	FullPage bool   `json:"fullPage"`
}

// OGImageOptions is the 1200x630 viewport used for Open Graph images.
func OGImageOptions() ScreenshotOptions {
	return ScreenshotOptions{Width: 1200, Height: 630, Type: "png", FullPage: false}
}

// HTTPClient talks to the rendering API over HTTP with an API key.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a rendering client for the given API base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type pdfRequest struct {
	HTML    string     `json:"html"`
	Options PDFOptions `json:"options"`
}

type screenshotRequest struct {
	URL     string            `json:"url"`
	Options ScreenshotOptions `json:"options"`
}

// GeneratePDF submits an HTML document and returns the rendered PDF bytes.
func (c *HTTPClient) GeneratePDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error) {
	return c.post(ctx, "/v1/pdf", "application/pdf", pdfRequest{HTML: html, Options: opts})
}

// CaptureScreenshot captures a page screenshot and returns the PNG bytes.
func (c *HTTPClient) CaptureScreenshot(ctx context.Context, url string, opts ScreenshotOptions) ([]byte, error) {
	return c.post(ctx, "/v1/screenshot", "image/png", screenshotRequest{URL: url, Options: opts})
}

func (c *HTTPClient) post(ctx context.Context, path, accept string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create render request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("render API returned status %d: %s", resp.StatusCode, detail)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read render response: %w", err)
	}
	return data, nil
}
