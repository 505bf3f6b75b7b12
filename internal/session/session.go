// Package session replaces ambient browser storage with an explicit per-login context.
// A Session is created by Store.Login and torn down by Store.Logout; it owns the user's
// cart, submitted request summaries and the active request configurator.
package session

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo/mutable"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/cart"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/configurator"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("login id and password are required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoActiveRequest    = errors.New("no request is open")
)

// Session is safe for concurrent use
type Session struct {
	ID        string
	User      models.User
	CreatedAt time.Time
	ExpiresAt time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	requests []models.RequestRecord
	active   *configurator.Configurator
}

func newSession(user models.User, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		cart:      cart.New(),
	}
}

// OpenRequest starts an empty selection for dept, discarding any previous one
func (s *Session) OpenRequest(cat configurator.Catalog, dept models.Department) models.RequestSelection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = configurator.New(cat, dept)
	return s.active.Selection()
}

// WithRequest runs fn against the open configurator while holding the session lock
func (s *Session) WithRequest(fn func(c *configurator.Configurator) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return ErrNoActiveRequest
	}
	return fn(s.active)
}

// AddToCart adds the open selection's product and quantity to the cart
func (s *Session) AddToCart(now time.Time) (cart.Item, models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return cart.Item{}, models.Product{}, ErrNoActiveRequest
	}
	p, ok := s.active.Product()
	if !ok {
		return cart.Item{}, models.Product{}, configurator.ErrNoProductSelected
	}
	item, err := s.cart.Add(p, s.active.Selection().Quantity, now)
	if err != nil {
		return cart.Item{}, p, err
	}
	return item, p, nil
}

// SubmitRequest validates the open selection, records it as a pending request and
// discards the selection. On a failed validation the selection is left intact and
// the returned Validation lists what is missing.
func (s *Session) SubmitRequest(now time.Time) (models.RequestRecord, configurator.Validation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.RequestRecord{}, configurator.Validation{}, ErrNoActiveRequest
	}

	v := s.active.ValidateForSubmission()
	if !v.OK {
		return models.RequestRecord{}, v, v.Err()
	}

	summary, err := s.active.Summary()
	if err != nil {
		return models.RequestRecord{}, v, err
	}
	p, _ := s.active.Product()

	rec := models.RequestRecord{
		OrderID:       "REQ-" + strings.ToUpper(uuid.NewString()[:8]),
		RequestType:   p.Name,
		RequestDate:   now.Format("2006-01-02"),
		CurrentStatus: models.RequestStatusPending,
		Selection:     s.active.Selection(),
		Summary:       summary,
		SubmittedAt:   now,
	}
	s.requests = append(s.requests, rec)
	s.active = nil
	return rec, v, nil
}

// CloseRequest discards the open selection
func (s *Session) CloseRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Requests returns submitted request summaries, newest first
func (s *Session) Requests() []models.RequestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.requests)
	mutable.Reverse(out)
	return out
}

func (s *Session) CartItems() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

func (s *Session) CartTotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total().StringFixed(2)
}

func (s *Session) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(productID)
}

func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.cart.Clear()
	s.requests = nil
}
