package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/logging"
)

// RouterConfig carries the router settings that come from the environment
type RouterConfig struct {
	CORSOrigin string
	GitSHA     string
	BuildTime  string
}

// NewRouter wires middleware and routes
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())

	// CORS restricted to the portal origin if provided
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}
	if cfg.CORSOrigin != "" {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSOrigin, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	router.GET("/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ready", handler.Health)

	router.POST("/api/auth/login", handler.Login)

	apiGroup := router.Group("/api")
	apiGroup.Use(AuthMiddleware(handler.sessions))
	{
		apiGroup.POST("/auth/logout", handler.Logout)
		apiGroup.GET("/auth/me", handler.Me)

		apiGroup.GET("/dashboard", handler.Dashboard)
		apiGroup.GET("/departments", handler.Departments)
		apiGroup.GET("/departments/:department/categories", handler.Categories)
		apiGroup.GET("/departments/:department/categories/:category/products", handler.Products)

		apiGroup.POST("/requests/:department", handler.OpenRequest)
		apiGroup.GET("/requests", handler.ListRequests)

		current := apiGroup.Group("/request")
		{
			current.GET("", handler.GetRequest)
			current.DELETE("", handler.CloseRequest)
			current.PUT("/department", handler.SetDepartment)
			current.PUT("/category", handler.SetCategory)
			current.PUT("/product", handler.SetProduct)
			current.PUT("/quantity", handler.SetQuantity)
			current.PUT("/recipient", handler.SetRecipient)
			current.GET("/summary", handler.Summary)
			current.GET("/validation", handler.Validation)
			current.POST("/cart", handler.AddToCart)
			current.POST("/submit", handler.Submit)
		}

		apiGroup.GET("/cart", handler.GetCart)
		apiGroup.DELETE("/cart/:product_id", handler.RemoveFromCart)
	}

	// Root endpoint for basic info
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "asset-flow",
			"git_sha":    cfg.GitSHA,
			"build_time": cfg.BuildTime,
			"endpoints": gin.H{
				"auth":        "/api/auth/login",
				"dashboard":   "/api/dashboard",
				"departments": "/api/departments",
				"request":     "/api/request",
				"cart":        "/api/cart",
			},
		})
	})

	return router
}
