package entity

// Customer is a remote customer record, edited via full-record updates.
type Customer struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	IsPaying  bool    `json:"is_paying_customer"`
	Billing   Address `json:"billing"`
	Shipping  Address `json:"shipping"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

// AuthToken is the commerce token endpoint's response to a successful login.
type AuthToken struct {
	Token       string `json:"token"`
	UserEmail   string `json:"user_email"`
	UserNice    string `json:"user_nicename"`
	DisplayName string `json:"user_display_name"`
}

// SessionClaims are the identity claims extracted from a commerce JWT.
type SessionClaims struct {
	CustomerID int64
	Email      string
}
