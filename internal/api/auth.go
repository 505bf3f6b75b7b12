package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/session"
)

const sessionKey = "session"

// AuthMiddleware validates the session token and attaches the session to the context
func AuthMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Authorization header required",
				Message: "Please provide a valid authorization token",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid authorization format",
				Message: "Authorization header must be in format 'Bearer <token>'",
			})
			c.Abort()
			return
		}

		sess, err := store.Authenticate(tokenParts[1])
		if err != nil {
			msg := "The provided token is invalid or expired"
			if errors.Is(err, session.ErrSessionNotFound) {
				msg = "The session has ended, please log in again"
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid token",
				Message: msg,
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Set("session_id", sess.ID)
		c.Next()
	}
}

// GetSession returns the session attached by AuthMiddleware
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func mustSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid session",
			Message: "Could not resolve session from token",
		})
	}
	return sess, ok
}

// Login accepts any non-empty login id and password and opens a session
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Missing credentials fail like wrong ones; an unreadable body is a bad request
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Incorrect Username or Password",
				Message: session.ErrInvalidCredentials.Error(),
			})
			return
		}
		badRequest(c, err)
		return
	}

	sess, token, err := h.sessions.Login(req.LoginID, req.Password, req.Name)
	if err != nil {
		status := http.StatusInternalServerError
		label := "Login failed. Please try again."
		if errors.Is(err, session.ErrInvalidCredentials) {
			status = http.StatusUnauthorized
			label = "Incorrect Username or Password"
		}
		c.JSON(status, models.ErrorResponse{Error: label, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:     token,
			ExpiresAt: sess.ExpiresAt.Unix(),
			User:      sess.User,
		},
	})
}

// Logout tears the session down
func (h *Handler) Logout(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	if err := h.sessions.Logout(sess.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Logged out"})
}

// Me returns the current user
func (h *Handler) Me(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{
		Message: "User retrieved successfully",
		Data:    sess.User,
	})
}
