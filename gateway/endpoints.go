package gateway

import (
	"context"
	"fmt"
)

// Catalog

// ListProducts retrieves one page of products. Supported filters include
// search, brand_id, category_id, campaign_id and tag_id.
func (c *Client) ListProducts(ctx context.Context, req PageRequest) ([]Product, int, error) {
	return fetchList[Product](ctx, c, "/api/products", req)
}

// GetProduct retrieves a single product.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return fetchDetail[Product](ctx, c, "/api/products/"+id)
}

// ListBrands retrieves one page of brands.
func (c *Client) ListBrands(ctx context.Context, req PageRequest) ([]Brand, int, error) {
	return fetchList[Brand](ctx, c, "/api/brands", req)
}

// ListCategories retrieves one page of categories.
func (c *Client) ListCategories(ctx context.Context, req PageRequest) ([]Category, int, error) {
	return fetchList[Category](ctx, c, "/api/categories", req)
}

// ListCampaigns retrieves one page of campaigns.
func (c *Client) ListCampaigns(ctx context.Context, req PageRequest) ([]Campaign, int, error) {
	return fetchList[Campaign](ctx, c, "/api/campaigns", req)
}

// ListTags retrieves one page of tags.
func (c *Client) ListTags(ctx context.Context, req PageRequest) ([]Tag, int, error) {
	return fetchList[Tag](ctx, c, "/api/tags", req)
}

// Orders

// ListOrders retrieves one page of the user's orders. The status filter
// narrows by order state.
func (c *Client) ListOrders(ctx context.Context, req PageRequest) ([]Order, int, error) {
	return fetchList[Order](ctx, c, "/api/orders", req)
}

// GetOrder retrieves a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	return fetchDetail[Order](ctx, c, "/api/orders/"+id)
}

// CreateOrder submits an order. Errors propagate to the caller; this is a
// mutating action and is never absorbed into list state.
func (c *Client) CreateOrder(ctx context.Context, submission OrderSubmission) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	if err := postJSON(ctx, c, "/api/orders", submission, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// PayOrder submits payment evidence for an order.
func (c *Client) PayOrder(ctx context.Context, orderID string, slip PaymentSlip) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	path := fmt.Sprintf("/api/orders/%s/pay", orderID)
	if err := postJSON(ctx, c, path, slip, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// Addresses

// ListAddresses retrieves one page of the user's delivery addresses.
func (c *Client) ListAddresses(ctx context.Context, req PageRequest) ([]Address, int, error) {
	return fetchList[Address](ctx, c, "/api/addresses", req)
}

// CreateAddress adds a delivery address.
func (c *Client) CreateAddress(ctx context.Context, addr Address) (*Address, error) {
	var envelope struct {
		Message string  `json:"message"`
		Data    Address `json:"data"`
	}
	if err := postJSON(ctx, c, "/api/addresses", addr, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Chat

// ListChats retrieves one page of the user's chat threads.
func (c *Client) ListChats(ctx context.Context, req PageRequest) ([]Chat, int, error) {
	return fetchList[Chat](ctx, c, "/api/chats", req)
}

// ListChatMessages retrieves one page of messages in a chat.
func (c *Client) ListChatMessages(ctx context.Context, chatID string, req PageRequest) ([]ChatMessage, int, error) {
	path := fmt.Sprintf("/api/chats/%s/messages", chatID)
	return fetchList[ChatMessage](ctx, c, path, req)
}

// SendChatMessage posts a message to a chat.
func (c *Client) SendChatMessage(ctx context.Context, chatID, body string) (*ChatMessage, error) {
	path := fmt.Sprintf("/api/chats/%s/messages", chatID)
	var envelope struct {
		Message string      `json:"message"`
		Data    ChatMessage `json:"data"`
	}
	payload := map[string]string{"body": body}
	if err := postJSON(ctx, c, path, payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Notifications

// ListNotifications retrieves one page of user-scoped notifications.
func (c *Client) ListNotifications(ctx context.Context, req PageRequest) ([]UserNotification, int, error) {
	return fetchList[UserNotification](ctx, c, "/api/notifications", req)
}

// MarkNotificationsRead marks all of the user's notifications read on the
// server. Callers refetch afterwards to pick up the new read_at stamps.
func (c *Client) MarkNotificationsRead(ctx context.Context) error {
	return postJSON(ctx, c, "/api/notifications/read-all", nil, nil)
}

// ListGlobalNotifications retrieves one page of broadcast notifications.
// These carry no server read state.
func (c *Client) ListGlobalNotifications(ctx context.Context, req PageRequest) ([]GlobalNotification, int, error) {
	return fetchList[GlobalNotification](ctx, c, "/api/global-notifications", req)
}

// Wishlist

// ToggleWishlist flips a product's wishlist membership.
func (c *Client) ToggleWishlist(ctx context.Context, productID string) (*WishlistResult, error) {
	path := fmt.Sprintf("/api/wishlist/%s/toggle", productID)
	var result WishlistResult
	if err := postJSON(ctx, c, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListWishlist retrieves one page of wishlisted products.
func (c *Client) ListWishlist(ctx context.Context, req PageRequest) ([]Product, int, error) {
	return fetchList[Product](ctx, c, "/api/wishlist", req)
}

// Profile

// FetchProfile retrieves the authenticated user's profile.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	return fetchDetail[Profile](ctx, c, "/api/profile")
}

// UpdateProfile replaces the user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, profile Profile) (*Profile, error) {
	var envelope struct {
		Message string  `json:"message"`
		Data    Profile `json:"data"`
	}
	if err := postJSON(ctx, c, "/api/profile", profile, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Locations

// ListCountries retrieves one page of countries.
func (c *Client) ListCountries(ctx context.Context, req PageRequest) ([]Country, int, error) {
	return fetchList[Country](ctx, c, "/api/countries", req)
}

// ListStates retrieves one page of states for a country.
func (c *Client) ListStates(ctx context.Context, countryID string, req PageRequest) ([]State, int, error) {
	path := fmt.Sprintf("/api/countries/%s/states", countryID)
	return fetchList[State](ctx, c, path, req)
}

// ListCities retrieves one page of cities for a state.
func (c *Client) ListCities(ctx context.Context, stateID string, req PageRequest) ([]City, int, error) {
	path := fmt.Sprintf("/api/states/%s/cities", stateID)
	return fetchList[City](ctx, c, path, req)
}

// Auth

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var envelope struct {
		Message string  `json:"message"`
		Data    Session `json:"data"`
	}
	if err := postJSON(ctx, c, "/api/login", creds, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Register creates an account. The server responds with an OTP challenge;
// the session token arrives from VerifyOTP.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return postJSON(ctx, c, "/api/register", reg, nil)
}

// VerifyOTP confirms the one-time passcode and returns the session.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (*Session, error) {
	var envelope struct {
		Message string  `json:"message"`
		Data    Session `json:"data"`
	}
	payload := map[string]string{"phone": phone, "code": code}
	if err := postJSON(ctx, c, "/api/otp/verify", payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ResendOTP asks the server to send a fresh passcode.
func (c *Client) ResendOTP(ctx context.Context, phone string) error {
	payload := map[string]string{"phone": phone}
	return postJSON(ctx, c, "/api/otp/resend", payload, nil)
}
