package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/cart"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/catalog"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/configurator"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/session"
)

type errorMapping struct {
	target error
	status int
	label  string
}

var errorMappings = []errorMapping{
	{configurator.ErrInvalidSelection, http.StatusUnprocessableEntity, "Invalid selection"},
	{configurator.ErrNoProductSelected, http.StatusConflict, "No product selected"},
	{session.ErrNoActiveRequest, http.StatusConflict, "No open request"},
	{models.ErrUnknownDepartment, http.StatusNotFound, "Department not found"},
	{catalog.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{catalog.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{models.ErrUnknownBranch, http.StatusBadRequest, "Invalid branch"},
	{models.ErrUnknownRecipientMode, http.StatusBadRequest, "Invalid recipient mode"},
	{cart.ErrOutOfStock, http.StatusConflict, "Insufficient stock"},
	{cart.ErrInvalidQuantity, http.StatusBadRequest, "Invalid quantity"},
	{cart.ErrItemNotFound, http.StatusNotFound, "Item not in cart"},
	{session.ErrSessionNotFound, http.StatusUnauthorized, "Session expired"},
}

// respondError writes the error response for err and records it for the request log
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, models.ErrorResponse{Error: m.label, Message: err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "Internal error",
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid request",
		Message: err.Error(),
	})
}
