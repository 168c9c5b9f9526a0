package auth_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/config"
)

func TestProvideTokenIssuerRequiresSecret(t *testing.T) {
	_, err := provideTokenIssuer(&config.Config{})
	assert.Error(t, err)

	issuer, err := provideTokenIssuer(&config.Config{JWTSecret: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, tokenTTL, issuer.TTL())
}
