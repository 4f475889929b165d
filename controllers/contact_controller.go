package controllers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/store"
	"github.com/cybershieldpro/backend/utils"
)

// ContactController forwards contact form submissions to the admin mailbox.
type ContactController struct {
	settings *store.SettingsStore
}

// NewContactController creates a new ContactController instance.
func NewContactController(settings *store.SettingsStore) *ContactController {
	return &ContactController{settings: settings}
}

// Submit validates the form, sanitizes its free text, and emails the admin.
func (c *ContactController) Submit(ctx *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Company string `json:"company"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "name, email and message are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "invalid email address")
		return
	}

	settings, err := c.settings.GetWithPassword()
	if err != nil {
		utils.Sugar.Errorf("read smtp settings: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to process submission")
		return
	}
	if settings == nil {
		settings = utils.FallbackSmtpSettings()
	}
	if settings == nil || settings.AdminEmail == "" {
		utils.Sugar.Warn("contact submission dropped: smtp not configured")
		utils.Error(ctx, http.StatusServiceUnavailable, 50360, "contact form temporarily unavailable")
		return
	}

	subject := "Website contact"
	if s := utils.SanitizeStrict(strings.TrimSpace(req.Subject)); s != "" {
		subject = "Website contact: " + s
	}
	body := fmt.Sprintf("Name: %s\nEmail: %s\nCompany: %s\n\n%s",
		utils.SanitizeStrict(strings.TrimSpace(req.Name)),
		req.Email,
		utils.SanitizeStrict(strings.TrimSpace(req.Company)),
		utils.SanitizeStrict(req.Message),
	)

	if err := utils.SendMail(settings, settings.AdminEmail, subject, body); err != nil {
		utils.Sugar.Errorf("contact mail failed: %v", err)
		utils.Error(ctx, http.StatusBadGateway, 50261, "failed to deliver message")
		return
	}

	utils.Success(ctx, gin.H{"received": true})
}
