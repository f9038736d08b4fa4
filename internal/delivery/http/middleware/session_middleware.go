package middleware

import (
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the caller's identity for every request. The
// token is taken from the Authorization header with a cookie fallback; a
// missing or unusable token yields the guest session, never a rejection.
type SessionMiddleware struct {
	sessionUsecase usecase.SessionUsecase
	cookieName     string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUsecase usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUsecase: sessionUsecase,
		cookieName:     cfg.Session.CookieName,
	}
}

// Resolve attaches the resolved session to the request context.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionUsecase.Resolve(c.Request().Context(), m.token(c))
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeySession), session)

		return next(c)
	}
}

// RequireAuth rejects guests. It must be used AFTER Resolve.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentSession(c).IsAuthenticated() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}

		return next(c)
	}
}

func (m *SessionMiddleware) token(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// CurrentSession returns the session resolved for this request, falling
// back to guest when the middleware did not run.
func CurrentSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(deliverycontext.KeySession)).(*entity.Session); ok {
		return session
	}

	return entity.Guest()
}
