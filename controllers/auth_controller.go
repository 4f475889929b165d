package controllers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/config"
	"github.com/cybershieldpro/backend/middleware"
	"github.com/cybershieldpro/backend/utils"
)

// AuthController handles the single-admin login flow. There is no user
// database; the admin identity comes from configuration.
type AuthController struct{}

// NewAuthController creates a new AuthController instance.
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login verifies the admin credential and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "username and password are required")
		return
	}

	cfg := config.Get()
	if cfg.AdminPasswordHash == "" {
		utils.Sugar.Warn("login rejected: no admin password hash configured")
		utils.Error(ctx, http.StatusUnauthorized, 40140, "invalid credentials")
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(req.Username)), []byte(cfg.AdminUsername)) == 1
	// Always run the bcrypt comparison so a bad username costs the same as a bad password.
	passwordOK := utils.CheckPassword(cfg.AdminPasswordHash, req.Password)
	if !usernameOK || !passwordOK {
		utils.Error(ctx, http.StatusUnauthorized, 40140, "invalid credentials")
		return
	}

	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(cfg.AdminUsername, ttl)
	if err != nil {
		utils.Sugar.Errorf("generate token: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":      token,
		"expires_in": int(ttl.Seconds()),
		"username":   cfg.AdminUsername,
	})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	tokenString := ctx.GetString(middleware.ContextTokenKey)
	if tokenString == "" {
		utils.Error(ctx, http.StatusUnauthorized, 40141, "unauthorized")
		return
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil || claims.ID == "" {
		utils.Error(ctx, http.StatusUnauthorized, 40141, "unauthorized")
		return
	}
	expiresAt := time.Now().Add(time.Duration(config.Get().TokenTTLHours) * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(claims.ID, expiresAt)

	utils.Success(ctx, gin.H{"logged_out": true})
}

// Me returns the authenticated admin identity.
func (a *AuthController) Me(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"username": ctx.GetString(middleware.ContextUsernameKey),
		"role":     "admin",
	})
}
