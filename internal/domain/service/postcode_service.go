package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PostcodeLookup resolves a postal pincode to district/state for address
// auto-fill during checkout input collection. This is the only asynchronous
// side effect of the input-collection phase.
type PostcodeLookup interface {
	Lookup(ctx context.Context, pincode string) (*entity.PostcodeInfo, error)
}
