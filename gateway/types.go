package gateway

import (
	"encoding/json"
	"time"
)

// PageRequest describes one page fetch against a list endpoint.
type PageRequest struct {
	Page    int
	Size    int
	Filters map[string]string
}

// Meta mirrors the list envelope's meta block.
type Meta struct {
	Total int `json:"total"`
}

// Links mirrors the list envelope's pagination links.
type Links struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

// Product describes a catalog item.
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              float64         `json:"price"`
	DiscountPrice      float64         `json:"discount_price"`
	LimitedQty         int             `json:"limited_qty_per_customer"`
	DiscountableItemID string          `json:"discountable_item_id"`
	BrandID            string          `json:"brand_id"`
	CategoryID         string          `json:"category_id"`
	Images             []string        `json:"images"`
	Wishlisted         bool            `json:"wishlisted"`
	Extra              json.RawMessage `json:"extra"`
}

// Brand, Category, Campaign and Tag are catalog facets used as list filters.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Banner string `json:"banner"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderLine is one submitted line of an order.
type OrderLine struct {
	ProductID          string  `json:"product_id"`
	Qty                int     `json:"qty"`
	UnitPrice          float64 `json:"unit_price"`
	Option             string  `json:"option"`
	DiscountableItemID string  `json:"discountable_item_id,omitempty"`
}

// OrderSubmission is the payload for creating an order.
type OrderSubmission struct {
	AddressID string      `json:"address_id"`
	Note      string      `json:"note,omitempty"`
	Lines     []OrderLine `json:"lines"`
}

// Order describes a placed order as reported by the server.
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Lines     []OrderLine `json:"lines"`
	CreatedAt string      `json:"created_at"`
}

// OrderConfirmation is returned by order creation and payment.
type OrderConfirmation struct {
	Message string `json:"message"`
	Order   *Order `json:"data"`
}

// PaymentSlip carries the payment evidence for an order.
type PaymentSlip struct {
	Reference string `json:"reference"`
	SlipURL   string `json:"slip_url,omitempty"`
}

// Address is a delivery address. IsDefault is server-authoritative; at most
// one address per user carries it.
type Address struct {
	ID        string `json:"id"`
	IsDefault bool   `json:"is_default"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
}

// Chat is a conversation thread.
type Chat struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	LastMessage   string `json:"last_message"`
	LastMessageAt string `json:"last_message_at"`
}

// ChatMessage is one message within a chat.
type ChatMessage struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	Body      string `json:"body"`
	Mine      bool   `json:"mine"`
	CreatedAt string `json:"created_at"`
}

// UserNotification is a server-scoped notification with server-tracked
// read state. ReadAt is nil while unread.
type UserNotification struct {
	ID     string          `json:"id"`
	ReadAt *time.Time      `json:"read_at"`
	Data   json.RawMessage `json:"data"`
}

// GlobalNotification is a broadcast notification with no server-tracked
// read state; read tracking is the device's responsibility.
type GlobalNotification struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"created_at"`
}

// Profile is the authenticated user's account data.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Country, State and City form the address location hierarchy.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type State struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	Name      string `json:"name"`
}

type City struct {
	ID      string `json:"id"`
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

// Credentials is the login payload.
type Credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Session is the token response from login and OTP verification.
type Session struct {
	Token string `json:"token"`
}

// WishlistResult reports the state after a wishlist toggle.
type WishlistResult struct {
	Message    string `json:"message"`
	Wishlisted bool   `json:"wishlisted"`
}
