package storefront

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/account"
	"github.com/perchgoods/storefront/cart"
	"github.com/perchgoods/storefront/config"
	"github.com/perchgoods/storefront/controller"
	"github.com/perchgoods/storefront/gateway"
	"github.com/perchgoods/storefront/notify"
	"github.com/perchgoods/storefront/overlay"
	"github.com/perchgoods/storefront/storage"
)

// Options configure the storefront core.
type Options struct {
	ConfigPath string
	// Logger overrides the default stderr logger. Use zerolog.Nop() to
	// silence the core entirely.
	Logger *zerolog.Logger
}

// App wires the storefront core together: one gateway client, one storage
// backend, and the engines every screen shares. Screens receive their
// listers from the App instead of reaching for globals.
type App struct {
	Config        config.Config
	Gateway       *gateway.Client
	Storage       *storage.FileStore
	Cart          *cart.Engine
	Reads         *overlay.ReadSet
	Notifications *notify.Reconciler
	Session       *account.Session
	DeviceID      string

	log zerolog.Logger
}

// New builds the core from configuration. A restored session token, if one
// is on the device, is installed on the gateway before New returns.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	client, err := gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init gateway client: %w", err)
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	deviceID, err := storage.DeviceID(store)
	if err != nil {
		return nil, fmt.Errorf("device id: %w", err)
	}

	reads := overlay.Load(store, log)
	session := account.NewSession(client, store, log)
	session.Restore()

	return &App{
		Config:        cfg,
		Gateway:       client,
		Storage:       store,
		Cart:          cart.NewEngine(store, client, log),
		Reads:         reads,
		Notifications: notify.NewReconciler(reads, client),
		Session:       session,
		DeviceID:      deviceID,
		log:           log,
	}, nil
}

// Close flushes best-effort persistence. Call it when the process is about
// to exit.
func (a *App) Close() {
	a.Reads.Flush()
}

// NewLister builds a pagination controller for any fetch function using the
// app's page size and logger. The typed helpers below cover the standard
// screens; custom lists go through here.
func NewLister[T any](a *App, fetch controller.PageFunc[T]) *controller.Lister[T] {
	return controller.NewLister(fetch, a.Config.PageSize, a.log)
}

// Products returns a lister for the catalog. Filters: search, brand_id,
// category_id, campaign_id, tag_id.
func (a *App) Products() *controller.Lister[gateway.Product] {
	return NewLister(a, a.Gateway.ListProducts)
}

// Orders returns a lister for the user's orders. Filter: status.
func (a *App) Orders() *controller.Lister[gateway.Order] {
	return NewLister(a, a.Gateway.ListOrders)
}

// Addresses returns a lister for delivery addresses.
func (a *App) Addresses() *controller.Lister[gateway.Address] {
	return NewLister(a, a.Gateway.ListAddresses)
}

// Chats returns a lister for chat threads.
func (a *App) Chats() *controller.Lister[gateway.Chat] {
	return NewLister(a, a.Gateway.ListChats)
}

// ChatMessages returns a lister for one chat's messages.
func (a *App) ChatMessages(chatID string) *controller.Lister[gateway.ChatMessage] {
	return NewLister(a, func(ctx context.Context, req gateway.PageRequest) ([]gateway.ChatMessage, int, error) {
		return a.Gateway.ListChatMessages(ctx, chatID, req)
	})
}

// UserNotifications returns a lister for server-scoped notifications.
func (a *App) UserNotifications() *controller.Lister[gateway.UserNotification] {
	return NewLister(a, a.Gateway.ListNotifications)
}

// GlobalNotifications returns a lister for broadcast notifications.
func (a *App) GlobalNotifications() *controller.Lister[gateway.GlobalNotification] {
	return NewLister(a, a.Gateway.ListGlobalNotifications)
}

// Wishlist returns a lister for wishlisted products.
func (a *App) Wishlist() *controller.Lister[gateway.Product] {
	return NewLister(a, a.Gateway.ListWishlist)
}

// Brands returns a lister for brand facets.
func (a *App) Brands() *controller.Lister[gateway.Brand] {
	return NewLister(a, a.Gateway.ListBrands)
}

// Categories returns a lister for category facets.
func (a *App) Categories() *controller.Lister[gateway.Category] {
	return NewLister(a, a.Gateway.ListCategories)
}

// ScrollDebouncer returns a debouncer configured with the client's debounce
// delay. One per list screen.
func (a *App) ScrollDebouncer() *controller.Debouncer {
	return controller.NewDebouncer(a.Config.DebounceDelay)
}
