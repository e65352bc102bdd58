package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestGoogleOAuthService_LoginURL(t *testing.T) {
	svc := NewGoogleOAuthService(&config.Config{
		GoogleClientID:    "client-id",
		GoogleRedirectURL: "http://localhost:3000/callback",
	})

	state, err := svc.GenerateStateString(context.Background())
	require.NoError(t, err)
	assert.Len(t, state, 32)

	u, err := url.Parse(svc.GetGoogleLoginURL(context.Background(), state))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:3000/callback", q.Get("redirect_uri"))
}

func TestGoogleOAuthService_ExchangeWithoutClientID(t *testing.T) {
	_, err := NewGoogleOAuthService(&config.Config{}).ExchangeCode(context.Background(), "code")
	assert.ErrorContains(t, err, "client ID is not configured")
}

func TestIdentityFromPayload(t *testing.T) {
	id := identityFromPayload(&idtoken.Payload{
		Subject: "123",
		Claims: map[string]interface{}{
			"email":          "bob@example.com",
			"name":           "Bob",
			"email_verified": true,
		},
	})
	assert.Equal(t, "123", id.Subject)
	assert.Equal(t, "bob@example.com", id.Email)
	assert.Equal(t, "Bob", id.Name)
	assert.True(t, id.EmailVerified)

	id = identityFromPayload(&idtoken.Payload{Claims: map[string]interface{}{"email_verified": "false"}})
	assert.False(t, id.EmailVerified)
}
