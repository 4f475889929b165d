package models

import "time"

// SmtpSettings is the admin-managed mail configuration. Password is stored in
// the settings file but stripped before the record is handed to any API
// caller; the omitempty tag keeps the emptied field out of responses.
type SmtpSettings struct {
	Host       string    `json:"host"`
	Port       int       `json:"port"`
	Secure     bool      `json:"secure"`
	User       string    `json:"user"`
	Password   string    `json:"password,omitempty"`
	FromEmail  string    `json:"fromEmail"`
	FromName   string    `json:"fromName"`
	AdminEmail string    `json:"adminEmail"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UpdatedBy  string    `json:"updatedBy"`
}
