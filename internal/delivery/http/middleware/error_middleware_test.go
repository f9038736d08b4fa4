package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppErrorEnvelope(t *testing.T) {
	c, rec := newErrorContext(t)
	m := NewErrorMiddleware(slog.Default())

	m.HandleHTTPError(domainerrors.ErrSessionRequired, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SESSION_REQUIRED", resp.Error.Code)
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	c, rec := newErrorContext(t)
	m := NewErrorMiddleware(slog.Default())

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, domainerrors.ErrInternalError.HTTPCode(), rec.Code)

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), resp.Error.Code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), resp.Message)
}
