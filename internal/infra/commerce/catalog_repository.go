package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

const categoriesPerPage = 100

// catalogRepository implements the read-only catalog resources.
type catalogRepository struct {
	client *Client
}

// NewCatalogRepository is the constructor for the catalog repository.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) Products(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	values := url.Values{"context": {"view"}}
	setInt := func(key string, v int) {
		if v > 0 {
			values.Set(key, strconv.Itoa(v))
		}
	}
	setStr := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}

	setInt("page", query.Page)
	setInt("per_page", query.PerPage)
	setInt("min_price", query.MinPrice)
	setInt("max_price", query.MaxPrice)
	setStr("search", query.Search)
	setStr("slug", query.Slug)
	setStr("category", query.Category)
	setStr("orderby", query.OrderBy)
	setStr("order", query.Order)
	setStr("attribute", query.Attribute)
	setStr("attribute_term", query.AttributeTerm)
	if query.Featured {
		values.Set("featured", "true")
	}

	var products []*entity.Product
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "products",
		query:      values,
		forceBasic: true,
		out:        &products,
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *catalogRepository) ProductByID(ctx context.Context, productID int64) (*entity.Product, error) {
	product := &entity.Product{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "products/" + strconv.FormatInt(productID, 10),
		forceBasic: true,
		out:        product,
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *catalogRepository) Categories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "products/categories",
		query:      url.Values{"per_page": {strconv.Itoa(categoriesPerPage)}},
		forceBasic: true,
		out:        &categories,
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// rawGateway tolerates the backend reporting "order" as either a string or
// a number.
type rawGateway struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Order       json.RawMessage `json:"order"`
	Enabled     bool            `json:"enabled"`
	MethodTitle string          `json:"method_title"`
}

func (r *catalogRepository) PaymentGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	var raw []rawGateway
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "payment_gateways",
		query:      url.Values{"context": {"view"}},
		forceBasic: true,
		out:        &raw,
	})
	if err != nil {
		return nil, err
	}

	gateways := make([]*entity.PaymentGateway, 0, len(raw))
	for _, g := range raw {
		gateways = append(gateways, &entity.PaymentGateway{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Order:       decodeOrder(g.Order),
			Enabled:     g.Enabled,
			MethodTitle: g.MethodTitle,
		})
	}

	return gateways, nil
}

func decodeOrder(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if n, err := strconv.Atoi(asString); err == nil {
			return n
		}
	}

	return 0
}

func (r *catalogRepository) ShippingMethods(ctx context.Context) ([]*entity.ShippingMethod, error) {
	var methods []*entity.ShippingMethod
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "shipping_methods",
		query:      url.Values{"context": {"view"}},
		forceBasic: true,
		out:        &methods,
	})
	if err != nil {
		return nil, err
	}

	return methods, nil
}

func (r *catalogRepository) ShippingClasses(ctx context.Context) ([]*entity.ShippingClass, error) {
	var classes []*entity.ShippingClass
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "products/shipping_classes",
		query:      url.Values{"context": {"view"}},
		forceBasic: true,
		out:        &classes,
	})
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *catalogRepository) Taxes(ctx context.Context) ([]*entity.TaxRate, error) {
	var taxes []*entity.TaxRate
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "taxes",
		query:      url.Values{"context": {"view"}},
		forceBasic: true,
		out:        &taxes,
	})
	if err != nil {
		return nil, err
	}

	return taxes, nil
}

func (r *catalogRepository) Coupons(ctx context.Context) ([]*entity.Coupon, error) {
	var coupons []*entity.Coupon
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "coupons",
		forceBasic: true,
		out:        &coupons,
	})
	if err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *catalogRepository) PageBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	var pages []*entity.Page
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.PagesURL,
		path:       "pages",
		query:      url.Values{"slug": {slug}},
		forceBasic: true,
		out:        &pages,
	})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return pages[0], nil
}
