package account

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/gateway"
	"github.com/perchgoods/storefront/storage"
)

// Validation failures raised synchronously, before any network call.
var (
	ErrMissingCredentials = errors.New("phone and password are required")
	ErrOTPLength          = errors.New("otp code must be at least 4 digits")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
)

// Gateway is the slice of the API client the session layer drives.
type Gateway interface {
	Login(ctx context.Context, creds gateway.Credentials) (*gateway.Session, error)
	Register(ctx context.Context, reg gateway.Registration) error
	VerifyOTP(ctx context.Context, phone, code string) (*gateway.Session, error)
	ResendOTP(ctx context.Context, phone string) error
	SetToken(token string)
	ClearToken()
}

// Session manages the auth token lifecycle: local validation, the login and
// OTP flows, and token persistence across restarts. Auth errors from the
// gateway propagate to the caller for alert display; only the best-effort
// token write is absorbed.
type Session struct {
	gw    Gateway
	store storage.Store
	log   zerolog.Logger

	mu    sync.Mutex
	token string
}

// NewSession builds a Session over the gateway and device storage.
func NewSession(gw Gateway, store storage.Store, log zerolog.Logger) *Session {
	return &Session{gw: gw, store: store, log: log}
}

// Restore loads a persisted token and installs it on the gateway. Returns
// true when a session was restored. Any storage failure reads as "not
// logged in".
func (s *Session) Restore() bool {
	bytes, err := s.store.Get(storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn().Err(err).Msg("token restore failed")
		}
		return false
	}
	token := strings.TrimSpace(string(bytes))
	if token == "" {
		return false
	}
	s.install(token)
	return true
}

// Authenticated reports whether a token is active.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Login validates locally, then exchanges credentials for a token.
func (s *Session) Login(ctx context.Context, phone, password string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return ErrMissingCredentials
	}
	session, err := s.gw.Login(ctx, gateway.Credentials{Phone: phone, Password: password})
	if err != nil {
		return err
	}
	s.install(session.Token)
	return nil
}

// Register validates locally, then creates the account. The token arrives
// later from VerifyOTP.
func (s *Session) Register(ctx context.Context, name, phone, password, confirmation string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return ErrMissingCredentials
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return s.gw.Register(ctx, gateway.Registration{
		Name:                 strings.TrimSpace(name),
		Phone:                phone,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
}

// VerifyOTP checks the code length locally, then confirms it with the
// server and installs the returned token.
func (s *Session) VerifyOTP(ctx context.Context, phone, code string) error {
	code = strings.TrimSpace(code)
	if len(code) < 4 {
		return ErrOTPLength
	}
	session, err := s.gw.VerifyOTP(ctx, strings.TrimSpace(phone), code)
	if err != nil {
		return err
	}
	s.install(session.Token)
	return nil
}

// ResendOTP asks the server for a fresh passcode.
func (s *Session) ResendOTP(ctx context.Context, phone string) error {
	return s.gw.ResendOTP(ctx, strings.TrimSpace(phone))
}

// Logout drops the token from the gateway, memory, and storage.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.gw.ClearToken()
	if err := s.store.Remove(storage.KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("token removal failed")
	}
}

// install activates a token and persists it best-effort: a failed write
// costs the session at next launch, not the current one.
func (s *Session) install(token string) {
	token = strings.TrimSpace(token)

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.gw.SetToken(token)
	if err := s.store.Set(storage.KeyToken, []byte(token)); err != nil {
		s.log.Warn().Err(err).Msg("token persist failed")
	}
}
