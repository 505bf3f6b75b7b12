package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/catalog"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/db"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/notify"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/session"
)

// Handler holds the collaborators shared by the HTTP handlers
type Handler struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	notifier notify.Notifier
	db       *db.Database
	now      func() time.Time
}

type Option func(*Handler)

// WithDatabase reports database health on /ready
func WithDatabase(database *db.Database) Option {
	return func(h *Handler) { h.db = database }
}

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a new handler instance
func NewHandler(cat *catalog.Catalog, sessions *session.Store, notifier notify.Notifier, opts ...Option) *Handler {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	h := &Handler{
		catalog:  cat,
		sessions: sessions,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Health checks the readiness of the service
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   "Database connection failed",
				Message: err.Error(),
			})
			return
		}
	}

	categories, products := h.catalog.All()
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "asset-flow",
		"categories": len(categories),
		"products":   len(products),
		"sessions":   h.sessions.Len(),
		"timestamp":  h.now().UTC(),
	})
}

func (h *Handler) notify(c *gin.Context, n notify.Notification) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// The toast is secondary to the action that triggered it
	if err := h.notifier.Notify(ctx, n); err != nil {
		_ = c.Error(err)
	}
}
