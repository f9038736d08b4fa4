// Package auth provides the concrete session token service.
package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtTokenService extracts identity claims from commerce-issued JWTs.
type jwtTokenService struct {
	// secret enables signature verification when the commerce backend
	// shares its signing key. Empty means claims are read unverified and
	// the backend remains the sole authority on token validity.
	secret string
}

// NewTokenService is the constructor for the session token service.
func NewTokenService(cfg *config.Config) service.TokenService {
	secret := ""
	if cfg.Session != nil {
		secret = cfg.Session.Secret
	}

	return &jwtTokenService{secret: secret}
}

// ParseClaims extracts the customer identity from the token.
func (s *jwtTokenService) ParseClaims(tokenString string) (*entity.SessionClaims, error) {
	claims := jwt.MapClaims{}

	if s.secret != "" {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(s.secret), nil
		})
		if err != nil || !token.Valid {
			return nil, errors.Wrap(err, "invalid session token")
		}
	} else {
		parser := jwt.NewParser()
		if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, errors.Wrap(err, "malformed session token")
		}
	}

	return claimsToIdentity(claims), nil
}

// claimsToIdentity maps the token claim layouts seen in the wild onto a
// SessionClaims value. The JWT plugin nests the user id under data.user.id;
// some builds put it in sub or a flat id claim.
func claimsToIdentity(claims jwt.MapClaims) *entity.SessionClaims {
	identity := &entity.SessionClaims{}

	if data, ok := claims["data"].(map[string]any); ok {
		if user, ok := data["user"].(map[string]any); ok {
			identity.CustomerID = numericClaim(user["id"])
			if email, ok := user["email"].(string); ok {
				identity.Email = email
			}
		}
	}
	if identity.CustomerID == 0 {
		if id, ok := claims["id"]; ok {
			identity.CustomerID = numericClaim(id)
		} else if sub, ok := claims["sub"].(string); ok {
			if n, err := strconv.ParseInt(sub, 10, 64); err == nil {
				identity.CustomerID = n
			}
		}
	}
	if identity.Email == "" {
		if email, ok := claims["email"].(string); ok {
			identity.Email = email
		}
	}

	return identity
}

func numericClaim(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}
