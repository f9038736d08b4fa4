// Package wishlist implements the REST adapter for the wishlist service,
// a backend distinct from the commerce platform.
package wishlist

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the wishlist repository.
func New(cfg *config.Config, logger *slog.Logger) (repository.WishlistRepository, error) {
	if cfg.Wishlist == nil || cfg.Wishlist.BaseURL == "" {
		return nil, errors.New("wishlist baseUrl is required")
	}

	return &client{
		baseURL: strings.TrimSuffix(cfg.Wishlist.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Wishlist.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *client) List(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error) {
	endpoint := c.baseURL + "/list?" + url.Values{
		"user_id": {strconv.FormatInt(userID, 10)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create wishlist request")
	}

	var entries []*entity.WishlistEntry
	if err := c.execute(req, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (c *client) Add(ctx context.Context, userID, productID int64) error {
	return c.post(ctx, "add", userID, productID)
}

func (c *client) Remove(ctx context.Context, userID, productID int64) error {
	return c.post(ctx, "remove", userID, productID)
}

func (c *client) post(ctx context.Context, action string, userID, productID int64) error {
	payload, err := json.Marshal(entity.WishlistEntry{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return errors.Wrap(err, "encode wishlist payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+action, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create wishlist request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.execute(req, nil)
}

func (c *client) execute(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewRemoteError(http.StatusBadGateway, "WISHLIST_UNREACHABLE", "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read wishlist response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &body)
		c.logger.Debug("wishlist request failed",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.NewRemoteError(resp.StatusCode, "WISHLIST_ERROR", body.Message, nil)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "decode wishlist response")
		}
	}

	return nil
}
