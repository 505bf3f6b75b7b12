package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/configurator"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/notify"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/session"
)

// OpenRequest opens an empty request form for a department
func (h *Handler) OpenRequest(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	dept, ok := ValidateDepartment(c)
	if !ok {
		return
	}

	sess.OpenRequest(h.catalog, dept)
	h.respondState(c, sess, http.StatusCreated, "Request opened")
}

// GetRequest returns the open request
func (h *Handler) GetRequest(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	h.respondState(c, sess, http.StatusOK, "Request retrieved successfully")
}

// CloseRequest discards the open request
func (h *Handler) CloseRequest(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	sess.CloseRequest()
	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Request discarded"})
}

func (h *Handler) SetDepartment(c *gin.Context) {
	var req models.SetDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	dept, err := models.ParseDepartment(req.Department)
	if err != nil {
		respondError(c, err)
		return
	}
	h.mutate(c, func(cfg *configurator.Configurator) error {
		cfg.SetDepartment(dept)
		return nil
	})
}

func (h *Handler) SetCategory(c *gin.Context) {
	var req models.SetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.mutate(c, func(cfg *configurator.Configurator) error {
		return cfg.SetCategory(req.Category)
	})
}

func (h *Handler) SetProduct(c *gin.Context) {
	var req models.SetProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.mutate(c, func(cfg *configurator.Configurator) error {
		return cfg.SetProduct(req.Product)
	})
}

// SetQuantity accepts the quantity as a JSON number or string; anything that is
// not a whole number is stored as 1
func (h *Handler) SetQuantity(c *gin.Context) {
	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	n := quantityInput(req.Quantity)
	h.mutate(c, func(cfg *configurator.Configurator) error {
		_, err := cfg.SetQuantity(n)
		return err
	})
}

func quantityInput(raw json.RawMessage) int {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return configurator.ParseQuantity(s)
	}
	return configurator.ParseQuantity(strings.TrimSpace(string(raw)))
}

func (h *Handler) SetRecipient(c *gin.Context) {
	var req models.SetRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	mode, err := models.ParseRecipientMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}
	var branch *models.Branch
	if req.Branch != nil {
		b, err := models.ParseBranch(*req.Branch)
		if err != nil {
			respondError(c, err)
			return
		}
		branch = &b
	}
	h.mutate(c, func(cfg *configurator.Configurator) error {
		if err := cfg.SetRecipientMode(mode); err != nil {
			return err
		}
		if req.EmployeeName == nil && branch == nil {
			return nil
		}
		// Only the fields present in the body change
		sel := cfg.Selection()
		name, b := sel.EmployeeName, sel.Branch
		if req.EmployeeName != nil {
			name = *req.EmployeeName
		}
		if branch != nil {
			b = *branch
		}
		return cfg.SetRecipientDetails(name, b)
	})
}

// Summary prices the open request
func (h *Handler) Summary(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var summary models.PricedSummary
	err := sess.WithRequest(func(cfg *configurator.Configurator) error {
		var err error
		summary, err = cfg.Summary()
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Summary calculated successfully",
		Data:    summary,
	})
}

// Validation reports whether the open request can be submitted
func (h *Handler) Validation(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var v configurator.Validation
	err := sess.WithRequest(func(cfg *configurator.Configurator) error {
		v = cfg.ValidateForSubmission()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Validation completed",
		Data:    v,
	})
}

// AddToCart adds the selected product and quantity to the session cart
func (h *Handler) AddToCart(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	item, product, err := sess.AddToCart(h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	n := notify.AddedToCart(sess.User.LoginID, item.Quantity, product.Name, gin.H{
		"product_id": product.ID,
		"cart_count": sess.CartCount(),
	})
	h.notify(c, n)

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Message: n.Description,
		Data: gin.H{
			"item":       item,
			"cart_count": sess.CartCount(),
		},
	})
}

// Submit validates and records the open request, then discards it
func (h *Handler) Submit(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	rec, v, err := sess.SubmitRequest(h.now())
	if err != nil {
		if !v.OK && len(v.Reasons) > 0 {
			label := "Incomplete request"
			if errors.Is(err, configurator.ErrIncompleteRecipientInfo) {
				label = "Incomplete recipient information"
			}
			_ = c.Error(err)
			c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
				Error:   label,
				Message: err.Error(),
				Reasons: v.Strings(),
			})
			return
		}
		respondError(c, err)
		return
	}

	n := notify.RequestSubmitted(sess.User.LoginID, gin.H{
		"order_id": rec.OrderID,
		"total":    rec.Summary.Total.StringFixed(2),
	})
	h.notify(c, n)

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Message: n.Title,
		Data:    rec,
	})
}

// ListRequests returns the session's submitted request summaries
func (h *Handler) ListRequests(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Requests retrieved successfully",
		Data:    sess.Requests(),
	})
}

// mutate applies fn to the open request and responds with the resulting state
func (h *Handler) mutate(c *gin.Context, fn func(cfg *configurator.Configurator) error) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var state models.RequestState
	err := sess.WithRequest(func(cfg *configurator.Configurator) error {
		if err := fn(cfg); err != nil {
			return err
		}
		state = h.stateOf(cfg)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Request updated",
		Data:    state,
	})
}

func (h *Handler) respondState(c *gin.Context, sess *session.Session, status int, message string) {
	var state models.RequestState
	err := sess.WithRequest(func(cfg *configurator.Configurator) error {
		state = h.stateOf(cfg)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, models.SuccessResponse{Message: message, Data: state})
}

func (h *Handler) stateOf(cfg *configurator.Configurator) models.RequestState {
	sel := cfg.Selection()
	state := models.RequestState{Selection: sel}
	if sel.CategoryID != "" {
		if cat, err := h.catalog.Category(sel.Department, sel.CategoryID); err == nil {
			state.Category = &cat
		}
	}
	if p, ok := cfg.Product(); ok {
		state.Product = &p
		if summary, err := cfg.Summary(); err == nil {
			state.Summary = &summary
		}
	}
	return state
}
