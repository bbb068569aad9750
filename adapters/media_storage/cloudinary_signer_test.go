package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

func signerWithSecret(secret string) *Signer {
	cfg := config.Config{}
	cfg.Cloudinary.ApiSecret = secret
	return NewCloudinarySigner(cfg)
}

func TestSign_KnownVector(t *testing.T) {
	s := signerWithSecret("testsecret")

	// sha1("timestamp=1700000000" + "testsecret")
	sig, err := s.Sign(map[string]any{"timestamp": float64(1700000000)})
	require.NoError(t, err)
	assert.Equal(t, "1e22a40ce74a5004041873f5fbd750e3639ecd9f", sig)
}

func TestSign_SortsParameters(t *testing.T) {
	s := signerWithSecret("testsecret")

	// sha1("folder=avatars&timestamp=1700000000" + "testsecret")
	sig, err := s.Sign(map[string]any{
		"timestamp": float64(1700000000),
		"folder":    "avatars",
	})
	require.NoError(t, err)
	assert.Equal(t, "4dc571cd2a00527e92d8a2839aa488b2819f35ab", sig)
}

func TestSign_JoinsListValuesWithCommas(t *testing.T) {
	s := signerWithSecret("testsecret")

	// sha1("tags=a,b,c&timestamp=1700000000" + "testsecret")
	sig, err := s.Sign(map[string]any{
		"timestamp": float64(1700000000),
		"tags":      []any{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fb0881aafe767362908a64efca5fb33446110a52", sig)
}

func TestSign_FailsClosedWithoutSecret(t *testing.T) {
	s := signerWithSecret("")

	sig, err := s.Sign(map[string]any{"timestamp": float64(1700000000)})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConfiguration)
	assert.Empty(t, sig)
}

func TestSign_RejectsEmptyParams(t *testing.T) {
	s := signerWithSecret("testsecret")

	_, err := s.Sign(map[string]any{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
