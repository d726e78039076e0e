// Package auth verifies bearer identity tokens of the upstream caller and
// restricts access to the configured email domains.
package auth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

// Principal is the verified caller identity extracted from the token
type Principal struct {
	Email   string
	Subject string
	Name    string
}

// TokenVerifier validates a bearer token and returns the caller identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// AuthError reports a failed authentication or authorization check.
// Status is the HTTP status the boundary layer should answer with.
type AuthError struct {
	Code    string
	Message string
	Status  int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// GoogleVerifier implements TokenVerifier against Google's ID token
// endpoint for a fixed OAuth client ID audience.
type GoogleVerifier struct {
	audience string
}

// NewGoogleVerifier creates a GoogleVerifier for the given client ID
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{audience: clientID}
}

// Verify validates the ID token signature, expiry and audience
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	payload, err := idtoken.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	principal := &Principal{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		principal.Name = name
	}

	return principal, nil
}

// DomainAllowed reports whether the email belongs to one of the allowed
// domains. An empty allow list rejects everything.
func DomainAllowed(email string, allowedDomains []string) bool {
	for _, domain := range allowedDomains {
		if strings.HasSuffix(email, "@"+domain) {
			return true
		}
	}
	return false
}
