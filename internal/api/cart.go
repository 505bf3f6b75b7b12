package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// GetCart returns the session cart
func (h *Handler) GetCart(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Cart retrieved successfully",
		Data: gin.H{
			"items": sess.CartItems(),
			"count": sess.CartCount(),
			"total": sess.CartTotal(),
		},
	})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	if err := sess.RemoveFromCart(c.Param("product_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Item removed from cart",
		Data:    gin.H{"count": sess.CartCount()},
	})
}
