package auth

import (
	"testing"
	"time"

	"compass/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{TokenTTL: ttl}
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)

	email := "alice@example.com"
	issuedAt := time.Now()

	token, err := svc.Issue(email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, email, claims.Subject)

	// Default validity window is 10 hours from issuance.
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, issuedAt.Add(10*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsForgedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)

	otherCfg := newTestConfig(0)
	otherCfg.SecretKey.Signing = "another_secret_key_entirely"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue("mallory@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Nanosecond))
	require.NoError(t, err)

	token, err := svc.Issue("bob@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSigningKey(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
