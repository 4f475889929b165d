package utils

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/cybershieldpro/backend/config"
	"github.com/cybershieldpro/backend/models"
)

// SendMail sends a plain text email using the given SMTP settings.
// Settings normally come from the settings store; FallbackSmtpSettings covers
// the window before an admin has saved any.
func SendMail(settings *models.SmtpSettings, to, subject, body string) error {
	if settings == nil || settings.Host == "" || settings.FromEmail == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))
	auth := smtp.PlainAuth("", settings.User, settings.Password, settings.Host)

	fromName := settings.FromName
	if fromName == "" {
		fromName = "CyberShield Pro"
	}
	msg := composeMessage(fromName, settings.FromEmail, to, subject, body)

	if settings.Secure {
		// STARTTLS with timeouts
		d := net.Dialer{Timeout: 5 * time.Second}
		conn, err := d.Dial("tcp", addr)
		if err != nil {
			return err
		}
		// ensure we don't hang forever
		_ = conn.SetDeadline(time.Now().Add(15 * time.Second))
		host, _, _ := net.SplitHostPort(addr)
		c, err := smtp.NewClient(conn, host)
		if err != nil {
			_ = conn.Close()
			return err
		}
		defer c.Close()
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
				return err
			}
		}
		if settings.User != "" {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
		if err := c.Mail(settings.FromEmail); err != nil {
			return err
		}
		if err := c.Rcpt(to); err != nil {
			return err
		}
		wc, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := wc.Write([]byte(msg)); err != nil {
			_ = wc.Close()
			return err
		}
		return wc.Close()
	}

	// Plain SMTP without TLS (not recommended)
	return smtp.SendMail(addr, auth, settings.FromEmail, []string{to}, []byte(msg))
}

// FallbackSmtpSettings builds settings from static configuration for use when
// the settings store is still empty.
func FallbackSmtpSettings() *models.SmtpSettings {
	cfg := config.Get()
	if cfg.SMTPHost == "" {
		return nil
	}
	return &models.SmtpSettings{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Secure:     cfg.SMTPTLS,
		User:       cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		FromEmail:  cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		AdminEmail: cfg.AdminEmail,
	}
}

// composeMessage assembles headers and body. Header values pass through
// stripHeaderBreaks first so caller-supplied text, notably the contact form
// subject, cannot smuggle extra header lines into the message.
func composeMessage(fromName, fromEmail, to, subject, body string) string {
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", encodeRFC2047(stripHeaderBreaks(fromName)), fromEmail),
		"To":           stripHeaderBreaks(to),
		"Subject":      encodeRFC2047(stripHeaderBreaks(subject)),
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.String()
}

// stripHeaderBreaks removes CR and LF so a header value stays a single line.
func stripHeaderBreaks(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

// encodeRFC2047 encodes a string for non-ASCII mail headers
func encodeRFC2047(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
