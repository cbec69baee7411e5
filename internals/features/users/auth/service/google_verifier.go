package service

import (
	"fmt"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

type GoogleVerifier interface {
	Verify(idToken string) (*GoogleIdentity, error)
}

// NewGoogleVerifier returns nil when no client id is configured.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if clientID == "" {
		return nil
	}
	return &googleIDTokenVerifier{clientID: clientID}
}

type googleIDTokenVerifier struct {
	clientID string
}

func (g *googleIDTokenVerifier) Verify(idToken string) (*GoogleIdentity, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.clientID}); err != nil {
		return nil, fmt.Errorf("verify google id token: %w", err)
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("decode google id token: %w", err)
	}
	return &GoogleIdentity{Subject: claimSet.Sub, Email: claimSet.Email, Name: claimSet.Name}, nil
}
