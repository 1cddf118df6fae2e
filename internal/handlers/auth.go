package handlers

import (
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/services"
	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login: POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	p, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessions.Establish(c, p); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"redirect": homeFor(p),
		"user":     p,
	})
}

// confirmPassword is compared in the browser only.
type registerRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"omitempty,max=50,personname"`
	LastName  string `json:"lastName" form:"lastName" binding:"omitempty,max=50,personname"`
	Username  string `json:"username" form:"username" binding:"required,max=50,username"`
	Email     string `json:"email" form:"email" binding:"required,max=255"`
	Password  string `json:"password" form:"password" binding:"required,max=72,strongpassword"`
}

// Register: POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	id, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       id,
		"redirect": "/login",
	})
}

// Logout: POST /logout. Answers success whether or not there was a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if p, ok := session.FromContext(c.Request.Context()); ok {
		h.auth.Logout(c.Request.Context(), p)
	}
	h.sessions.Destroy(c)

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/"})
}

// Me: GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, principal(c))
}
