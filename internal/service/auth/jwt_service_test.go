package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/biovital365/mandala-api/internal/config"
)

const testSecret = "test-jwt-secret-that-is-32-chars-long"

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}
}

func newTestService(t *testing.T, at time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testConfig(), func() time.Time { return at })
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "short"

	_, err := NewJWTService(cfg)
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService(t, fixedTime)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService(t, fixedTime)
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateErrors(t *testing.T) {
	userID := uuid.New()
	issuer := newTestService(t, fixedTime)

	access, err := issuer.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "another-secret-that-is-32-chars-long"
	forger, err := newHMACJWTService(otherCfg, func() time.Time { return fixedTime })
	require.NoError(t, err)
	forged, err := forger.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": userID.String(), "type": "access"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		at       time.Time
		validate func(svc *hmacJWTService, token string) error
		token    string
		wantErr  error
	}{
		{"expired access", fixedTime.Add(2 * time.Hour), accessValidator, access, ErrExpiredToken},
		{"within clock skew", fixedTime.Add(61 * time.Minute), accessValidator, access, nil},
		{"access issued in the future", fixedTime.Add(-time.Hour), accessValidator, access, ErrTokenNotYetValid},
		{"forged signature", fixedTime, accessValidator, forged, ErrInvalidToken},
		{"none algorithm", fixedTime, accessValidator, none, ErrInvalidToken},
		{"malformed", fixedTime, accessValidator, "not.a.token", ErrInvalidToken},
		{"refresh used as access", fixedTime, accessValidator, refresh, ErrWrongTokenType},
		{"access used as refresh", fixedTime, refreshValidator, access, ErrWrongTokenType},
		{"expired refresh", fixedTime.Add(48 * time.Hour), refreshValidator, refresh, ErrExpiredRefreshToken},
		{"malformed refresh", fixedTime, refreshValidator, "garbage", ErrInvalidRefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(newTestService(t, tt.at), tt.token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func accessValidator(svc *hmacJWTService, token string) error {
	_, err := svc.ValidateToken(context.Background(), token)
	return err
}

func refreshValidator(svc *hmacJWTService, token string) error {
	_, err := svc.ValidateRefreshToken(context.Background(), token)
	return err
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewBcryptVerifier()
	assert.NoError(t, v.Compare(string(hash), "correct horse battery"))
	assert.ErrorIs(t, v.Compare(string(hash), "wrong horse battery"), ErrPasswordMismatch)

	err = v.Compare("not-a-bcrypt-hash", "correct horse battery")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
