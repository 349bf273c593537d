package supabase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/supabase-community/gotrue-go"
)

// Authenticator validates dashboard credentials against the auth provider.
type Authenticator interface {
	Authenticate(email, password string) (userID string, err error)
}

// Client wraps the Supabase gotrue auth API.
type Client struct {
	auth gotrue.Client
}

// extractProjectRef pulls the project reference out of a Supabase URL,
// e.g. "https://akrqbuajqkirdekonpzy.supabase.co" -> "akrqbuajqkirdekonpzy".
func extractProjectRef(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return strings.Split(url, ".")[0]
}

// NewClient initializes the auth client and verifies connectivity.
func NewClient(supabaseURL, supabaseKey string) (*Client, error) {
	projectRef := extractProjectRef(supabaseURL)
	slog.Info("initializing supabase auth client", "project_ref", projectRef)

	client := gotrue.New(projectRef, supabaseKey)
	if _, err := client.GetSettings(); err != nil {
		return nil, fmt.Errorf("failed to connect to supabase: %w", err)
	}

	return &Client{auth: client}, nil
}

// Authenticate signs the user in with email and password, returning the
// provider's user ID on success.
func (c *Client) Authenticate(email, password string) (string, error) {
	res, err := c.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}
	if res == nil || res.AccessToken == "" {
		return "", fmt.Errorf("authentication rejected for %s", email)
	}
	return res.User.ID.String(), nil
}
