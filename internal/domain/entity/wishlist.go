package entity

// WishlistEntry is a (user, product) pair held by the wishlist backend.
// No ordering guarantee; duplicate adds are the backend's concern.
type WishlistEntry struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

// MergeSummary reports the outcome of a guest-to-authenticated cart merge.
// Loss is never acceptable, duplication is: items that were copied but not
// removed from the guest cart still count as added.
type MergeSummary struct {
	Total  int         `json:"total"`
	Added  int         `json:"added"`
	Failed int         `json:"failed"`
	Items  []MergeItem `json:"added_items,omitempty"`
	Errors []MergeItem `json:"failed_items,omitempty"`
}

// MergeItem identifies one guest line item handled by the merge.
type MergeItem struct {
	ID       int64  `json:"id"`
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

// MoveSummary reports the outcome of moving wishlist entries to the cart.
type MoveSummary struct {
	Total  int     `json:"total"`
	Moved  int     `json:"moved"`
	Failed []int64 `json:"failed_product_ids,omitempty"`
}
