package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// Departments lists the departments shown on the dashboard
func (h *Handler) Departments(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Departments retrieved successfully",
		Data:    h.catalog.Departments(),
	})
}

// Categories lists the request categories of a department. Departments without
// categories return an empty list.
func (h *Handler) Categories(c *gin.Context) {
	dept, ok := ValidateDepartment(c)
	if !ok {
		return
	}

	categories, err := h.catalog.Categories(dept)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// Products lists the products of a department's category
func (h *Handler) Products(c *gin.Context) {
	dept, ok := ValidateDepartment(c)
	if !ok {
		return
	}

	category, err := h.catalog.Category(dept, c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	products, err := h.catalog.Products(category.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// Dashboard returns the landing page: user, departments, request summaries and cart count
func (h *Handler) Dashboard(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Dashboard retrieved successfully",
		Data: models.DashboardResponse{
			User:        sess.User,
			Departments: h.catalog.Departments(),
			Requests:    sess.Requests(),
			CartCount:   sess.CartCount(),
		},
	})
}
