package server

import (
	"context"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the verified identity carried by a Google ID token.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier verifies Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// idTokenVerifier checks tokens against Google's published keys.
type idTokenVerifier struct {
	clientID string
}

// NewGoogleVerifier returns a verifier for tokens issued to clientID.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &idTokenVerifier{clientID: clientID}
}

// Verify validates the ID token and extracts the user identity.
func (v *idTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, &ErrUnauthenticated{Reason: "google sign-in is not configured"}
	}

	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, &ErrUnauthenticated{Reason: "invalid google id token", Cause: err}
	}

	return identityFromClaims(payload.Subject, payload.Claims)
}

func identityFromClaims(subject string, claims map[string]interface{}) (*GoogleIdentity, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, &ErrUnauthenticated{Reason: "google account has no email"}
	}
	// The claim must be present and true.
	if verified, ok := claims["email_verified"].(bool); !ok || !verified {
		return nil, &ErrUnauthenticated{Reason: "google email is not verified"}
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &GoogleIdentity{
		Subject: subject,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
