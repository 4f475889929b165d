package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cybershieldpro/backend/models"
)

// DefaultFromName is stamped onto saved SMTP settings when the payload leaves
// the sender name empty.
const DefaultFromName = "CyberShield Pro"

// SettingsStore persists the SMTP configuration as a single JSON document.
// Reads strip the password; partial saves that omit the password keep the
// stored one (merge-on-write).
type SettingsStore struct {
	path string
}

// NewSettingsStore returns a store backed by the JSON document at path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

func (s *SettingsStore) load() (*models.SmtpSettings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "read settings", Err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}
	var settings models.SmtpSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, &PersistenceError{Op: "decode settings", Err: err}
	}
	return &settings, nil
}

// Get returns the stored settings with the password stripped, or nil when
// nothing has been saved yet.
func (s *SettingsStore) Get() (*models.SmtpSettings, error) {
	settings, err := s.load()
	if err != nil || settings == nil {
		return nil, err
	}
	out := *settings
	out.Password = ""
	return &out, nil
}

// GetWithPassword returns the stored settings including the password. Only
// the mail sender uses it; the value must never reach an API response.
func (s *SettingsStore) GetWithPassword() (*models.SmtpSettings, error) {
	return s.load()
}

// Save validates the payload, merges in the previous password when the new
// one is empty, stamps the audit fields, and persists atomically. The
// returned copy is stripped like Get.
func (s *SettingsStore) Save(in models.SmtpSettings, actor string) (*models.SmtpSettings, error) {
	required := []struct {
		name  string
		value string
	}{
		{"host", in.Host},
		{"user", in.User},
		{"fromEmail", in.FromEmail},
		{"adminEmail", in.AdminEmail},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &ValidationError{Field: f.name}
		}
	}

	prev, err := s.load()
	if err != nil {
		return nil, err
	}
	if in.Password == "" && prev != nil {
		in.Password = prev.Password
	}
	if in.Port == 0 {
		in.Port = 587
	}
	if in.FromName == "" {
		in.FromName = DefaultFromName
	}
	in.UpdatedAt = time.Now().UTC()
	in.UpdatedBy = actor

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, &PersistenceError{Op: "prepare settings dir", Err: err}
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, &PersistenceError{Op: "encode settings", Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".smtp-*.json")
	if err != nil {
		return nil, &PersistenceError{Op: "write settings", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, &PersistenceError{Op: "write settings", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, &PersistenceError{Op: "write settings", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return nil, &PersistenceError{Op: "write settings", Err: err}
	}

	out := in
	out.Password = ""
	return &out, nil
}
