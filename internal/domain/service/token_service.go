// Package service declares cross-cutting service ports implemented under
// internal/infra.
package service

import "storefront/internal/domain/entity"

// TokenService extracts customer identity claims from a commerce-issued
// JWT. The commerce backend is the token's authority; local verification is
// optional and only enabled when the shared secret is configured.
type TokenService interface {
	ParseClaims(token string) (*entity.SessionClaims, error)
}
