package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cybershieldpro/backend/models"
)

func newTestSettingsStore(t *testing.T) *SettingsStore {
	t.Helper()
	return NewSettingsStore(filepath.Join(t.TempDir(), "smtp.json"))
}

func validSettings() models.SmtpSettings {
	return models.SmtpSettings{
		Host:       "smtp.example.com",
		User:       "mailer",
		Password:   "hunter2",
		FromEmail:  "noreply@example.com",
		AdminEmail: "admin@example.com",
	}
}

func TestGetEmptyStore(t *testing.T) {
	s := newTestSettingsStore(t)
	settings, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings != nil {
		t.Fatalf("settings = %+v, want nil for empty store", settings)
	}
}

func TestSaveStripsPasswordFromReads(t *testing.T) {
	s := newTestSettingsStore(t)

	saved, err := s.Save(validSettings(), "admin")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Password != "" {
		t.Error("Save result must not carry the password")
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Password != "" {
		t.Error("Get must not carry the password")
	}

	// The mailer still sees the stored credential.
	raw, err := s.GetWithPassword()
	if err != nil {
		t.Fatalf("GetWithPassword: %v", err)
	}
	if raw.Password != "hunter2" {
		t.Errorf("stored password = %q, want %q", raw.Password, "hunter2")
	}
}

func TestSavePreservesPasswordOnOmit(t *testing.T) {
	s := newTestSettingsStore(t)
	if _, err := s.Save(validSettings(), "admin"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	update := validSettings()
	update.Password = ""
	update.Host = "smtp2.example.com"
	if _, err := s.Save(update, "admin"); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	raw, err := s.GetWithPassword()
	if err != nil {
		t.Fatalf("GetWithPassword: %v", err)
	}
	if raw.Password != "hunter2" {
		t.Errorf("password not preserved, got %q", raw.Password)
	}
	if raw.Host != "smtp2.example.com" {
		t.Errorf("Host = %q, want updated value", raw.Host)
	}
}

func TestSaveValidation(t *testing.T) {
	s := newTestSettingsStore(t)

	cases := []struct {
		field string
		strip func(*models.SmtpSettings)
	}{
		{"host", func(in *models.SmtpSettings) { in.Host = "" }},
		{"user", func(in *models.SmtpSettings) { in.User = "" }},
		{"fromEmail", func(in *models.SmtpSettings) { in.FromEmail = "" }},
		{"adminEmail", func(in *models.SmtpSettings) { in.AdminEmail = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := validSettings()
			tc.strip(&in)
			_, err := s.Save(in, "admin")
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tc.field)
			}
		})
	}
}

func TestSaveDefaultsAndAudit(t *testing.T) {
	s := newTestSettingsStore(t)

	saved, err := s.Save(validSettings(), "root")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Port != 587 {
		t.Errorf("Port = %d, want 587", saved.Port)
	}
	if saved.FromName != DefaultFromName {
		t.Errorf("FromName = %q, want %q", saved.FromName, DefaultFromName)
	}
	if saved.Secure {
		t.Error("Secure should default to false")
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped")
	}
	if saved.UpdatedBy != "root" {
		t.Errorf("UpdatedBy = %q, want %q", saved.UpdatedBy, "root")
	}
}
