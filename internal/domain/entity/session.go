// Package entity contains the core business objects of the storefront,
// most of which mirror records owned by the external commerce platform.
package entity

import "strconv"

// Session carries the caller's identity for the duration of one request.
// An empty token means the caller is a guest and cart operations fall back
// to the shared client-credential (Basic auth) identity.
type Session struct {
	Token      string // Commerce-issued JWT, empty for guests.
	CustomerID int64  // Commerce customer id extracted from the token claims.
	Email      string // Login email extracted from the token claims.
}

// Guest returns the anonymous session.
func Guest() *Session {
	return &Session{}
}

// IsAuthenticated reports whether the session carries a customer token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// CacheKey returns the identity bucket used for cart/nonce caching.
// All guests share one bucket because the backend identifies guest carts by
// the client credentials, not by visitor.
func (s *Session) CacheKey() string {
	if !s.IsAuthenticated() {
		return "guest"
	}
	if s.CustomerID != 0 {
		return "customer:" + strconv.FormatInt(s.CustomerID, 10)
	}

	return "token:" + s.Token
}
