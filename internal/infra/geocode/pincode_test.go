package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLookup(t *testing.T, serverURL string) *pincodeService {
	t.Helper()

	svc, err := New(&config.Config{
		Geocode: &config.GeocodeConfig{
			BaseURL: serverURL,
			Timeout: 5 * time.Second,
		},
	})
	require.NoError(t, err)

	return svc.(*pincodeService)
}

func TestPincodeLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pincode/400001", r.URL.Path)
		w.Write([]byte(`[{"Status":"Success","PostOffice":[{"District":"Mumbai","State":"Maharashtra"}]}]`))
	}))
	defer server.Close()

	info, err := newTestLookup(t, server.URL).Lookup(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", info.District)
	assert.Equal(t, "Maharashtra", info.State)
	assert.Equal(t, "400001", info.Pincode)
}

func TestPincodeLookup_MalformedPincodeRejectedLocally(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	lookup := newTestLookup(t, server.URL)
	for _, pin := range []string{"", "1234", "abcdef", "1234567"} {
		_, err := lookup.Lookup(context.Background(), pin)
		assert.Error(t, err, "pincode %q", pin)
	}
	assert.False(t, called)
}

func TestPincodeLookup_UnknownPincodeIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Status":"Error","PostOffice":null}]`))
	}))
	defer server.Close()

	_, err := newTestLookup(t, server.URL).Lookup(context.Background(), "999999")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPincodeLookup_EmptyPostOfficeListIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Status":"Success","PostOffice":[]}]`))
	}))
	defer server.Close()

	_, err := newTestLookup(t, server.URL).Lookup(context.Background(), "400001")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
