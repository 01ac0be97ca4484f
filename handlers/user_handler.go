package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/services"
)

// UserHandler serves registration, login and the caller's profile.
type UserHandler struct {
	svc        services.UserService
	jwtSecret  string        // signing secret configured in main
	jwtExpires time.Duration // token validity
}

func NewUserHandler(svc services.UserService, jwtSecret string, jwtExp time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp}
}

// Register handles POST /auth/register (public).
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// Login handles POST /auth/login (public).
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), req, h.jwtSecret, h.jwtExpires)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: tok})
}

// Me handles GET /me: the user plus upload limit and remaining uploads.
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
