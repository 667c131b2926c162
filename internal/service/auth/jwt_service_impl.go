package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/config"
	"github.com/biovital365/mandala-api/internal/platform/logger"
)

// Issuer is written to the iss claim and required on validation.
const Issuer = "mandala-api"

// MinSecretLength is the shortest accepted HMAC signing secret.
const MinSecretLength = 32

// tokenKind bundles what differs between access and refresh tokens.
type tokenKind struct {
	name       string
	lifetime   time.Duration
	errInvalid error
	errExpired error
	errNotYet  error
}

// hmacJWTService implements JWTService with HMAC-SHA256 signing.
type hmacJWTService struct {
	signingKey []byte
	access     tokenKind
	refresh    tokenKind
	timeFunc   func() time.Time
	clockSkew  time.Duration
}

type jwtCustomClaims struct {
	UserID    uuid.UUID `json:"uid"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a JWTService from the auth configuration.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	return newHMACJWTService(cfg, time.Now)
}

func newHMACJWTService(cfg config.AuthConfig, now func() time.Time) (*hmacJWTService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &hmacJWTService{
		signingKey: []byte(cfg.JWTSecret),
		access: tokenKind{
			name:       TokenTypeAccess,
			lifetime:   time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
			errInvalid: ErrInvalidToken,
			errExpired: ErrExpiredToken,
			errNotYet:  ErrTokenNotYetValid,
		},
		refresh: tokenKind{
			name:       TokenTypeRefresh,
			lifetime:   time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
			errInvalid: ErrInvalidRefreshToken,
			errExpired: ErrExpiredRefreshToken,
			errNotYet:  ErrInvalidRefreshToken,
		},
		timeFunc:  now,
		clockSkew: 2 * time.Minute,
	}, nil
}

// GenerateToken implements JWTService.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.issue(ctx, s.access, userID)
}

// ValidateToken implements JWTService.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.validate(ctx, s.access, tokenString)
}

// GenerateRefreshToken implements JWTService.
func (s *hmacJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.issue(ctx, s.refresh, userID)
}

// ValidateRefreshToken implements JWTService.
func (s *hmacJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.validate(ctx, s.refresh, tokenString)
}

func (s *hmacJWTService) issue(ctx context.Context, kind tokenKind, userID uuid.UUID) (string, error) {
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID:    userID,
		TokenType: kind.name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(kind.lifetime)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign token",
			"error", err,
			"user_id", userID,
			"token_type", kind.name)
		return "", fmt.Errorf("failed to sign %s token: %w", kind.name, err)
	}

	return signed, nil
}

func (s *hmacJWTService) validate(ctx context.Context, kind tokenKind, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx).With("token_type", kind.name)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(Issuer),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: expired")
			return nil, kind.errExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
			log.Debug("token validation failed: not yet valid")
			return nil, kind.errNotYet
		default:
			log.Debug("token validation failed", "error", err)
			return nil, kind.errInvalid
		}
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, kind.errInvalid
	}
	if claims.TokenType != kind.name {
		log.Debug("token validation failed: wrong token type", "actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	log.Debug("token validated", "user_id", claims.UserID, "token_id", claims.ID)
	return &Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
