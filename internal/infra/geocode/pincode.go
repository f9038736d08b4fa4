// Package geocode implements the postal pincode lookup used to auto-fill
// city and state in the checkout address forms.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// pincodePattern matches the six-digit Indian postal codes the lookup
// service understands.
var pincodePattern = regexp.MustCompile(`^\d{6}$`)

type pincodeService struct {
	baseURL    string
	httpClient *http.Client
}

// New is the constructor for the pincode lookup service.
func New(cfg *config.Config) (service.PostcodeLookup, error) {
	if cfg.Geocode == nil || cfg.Geocode.BaseURL == "" {
		return nil, errors.New("geocode baseUrl is required")
	}

	return &pincodeService{
		baseURL: strings.TrimSuffix(cfg.Geocode.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Geocode.Timeout,
		},
	}, nil
}

// lookupResponse is the upstream response shape: a single-element array
// with a status and a list of post offices for the pincode.
type lookupResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup resolves a six-digit pincode to district and state. Unknown or
// malformed pincodes return ErrNotFound; the caller treats the lookup as a
// best-effort convenience, never a validation gate.
func (s *pincodeService) Lookup(ctx context.Context, pincode string) (*entity.PostcodeInfo, error) {
	if !pincodePattern.MatchString(pincode) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pincode must be 6 digits")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/pincode/"+pincode, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create pincode request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewRemoteError(http.StatusBadGateway, "GEOCODE_UNREACHABLE", "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.NewRemoteError(resp.StatusCode, "GEOCODE_ERROR", "", nil)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode pincode response")
	}

	if len(decoded) == 0 || decoded[0].Status != "Success" || len(decoded[0].PostOffice) == 0 {
		return nil, domainerrors.ErrNotFound
	}

	office := decoded[0].PostOffice[0]

	return &entity.PostcodeInfo{
		Pincode:  pincode,
		District: office.District,
		State:    office.State,
	}, nil
}
