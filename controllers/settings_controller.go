package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/middleware"
	"github.com/cybershieldpro/backend/models"
	"github.com/cybershieldpro/backend/store"
	"github.com/cybershieldpro/backend/utils"
)

// SettingsController manages the admin SMTP configuration.
type SettingsController struct {
	settings *store.SettingsStore
}

// NewSettingsController creates a new SettingsController instance.
func NewSettingsController(settings *store.SettingsStore) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetSmtp returns the stored settings with the password stripped. An empty
// store yields a null settings payload, not an error.
func (s *SettingsController) GetSmtp(ctx *gin.Context) {
	settings, err := s.settings.Get()
	if err != nil {
		utils.Sugar.Errorf("read smtp settings: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to read settings")
		return
	}
	utils.Success(ctx, gin.H{"settings": settings})
}

// SaveSmtp validates and persists the settings, keeping the previous password
// when the payload omits one.
func (s *SettingsController) SaveSmtp(ctx *gin.Context) {
	var req models.SmtpSettings
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	actor := ctx.GetString(middleware.ContextUsernameKey)
	saved, err := s.settings.Save(req, actor)
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			utils.Error(ctx, http.StatusBadRequest, 40051, vErr.Error())
			return
		}
		utils.Sugar.Errorf("save smtp settings: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to save settings")
		return
	}
	utils.Success(ctx, gin.H{"settings": saved})
}

// SendTest sends a short test message to the configured admin address so the
// saved settings can be verified end to end.
func (s *SettingsController) SendTest(ctx *gin.Context) {
	settings, err := s.settings.GetWithPassword()
	if err != nil {
		utils.Sugar.Errorf("read smtp settings: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to read settings")
		return
	}
	if settings == nil {
		settings = utils.FallbackSmtpSettings()
	}
	if settings == nil || settings.AdminEmail == "" {
		utils.Error(ctx, http.StatusBadRequest, 40052, "smtp settings not configured")
		return
	}

	body := "This is a test message from the CyberShield Pro website backend.\n" +
		"If you received it, the SMTP configuration works."
	if err := utils.SendMail(settings, settings.AdminEmail, "SMTP test", body); err != nil {
		utils.Sugar.Warnf("smtp test failed: %v", err)
		utils.Error(ctx, http.StatusBadGateway, 50252, "test email failed to send")
		return
	}
	utils.Success(ctx, gin.H{"sent_to": settings.AdminEmail})
}
