package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/neocodez/portfolio/models"
)

const brand = "NeoCodez"

var resetCodeHTML = template.Must(template.New("reset-code").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
    <div style="background-color: #007bff; color: #ffffff; padding: 20px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">{{.Brand}}</h1>
    </div>
    <div style="padding: 20px; text-align: center;">
      <h2>Password Reset Request</h2>
      <p>Hi {{.Name}},</p>
      <p>You requested to reset your password. Use the code below to proceed:</p>
      <div style="font-size: 32px; font-weight: bold; color: #007bff; margin: 20px 0; letter-spacing: 2px;">{{.Code}}</div>
      <p>This code is valid for <strong>{{.Minutes}} minutes</strong>.</p>
      <p>If you did not request a password reset, please ignore this email.</p>
      {{if .ResetURL}}<a href="{{.ResetURL}}" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: #ffffff; text-decoration: none; border-radius: 5px;">Reset Password</a>{{end}}
    </div>
    <div style="background-color: #f8f9fa; padding: 10px; text-align: center; font-size: 12px; color: #6c757d;">
      <p>&copy; {{.Year}} {{.Brand}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))

var contactHTML = template.Must(template.New("contact").Parse(`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>`))

type resetCodeData struct {
	Brand    string
	Name     string
	Code     string
	Minutes  int
	ResetURL string
	Year     int
}

// ResetCodeEmail builds the mail carrying a password reset code.
func ResetCodeEmail(to, name, code string, validFor time.Duration, frontendURL string) (Message, error) {
	if name == "" {
		name = "User"
	}

	data := resetCodeData{
		Brand:   brand,
		Name:    name,
		Code:    code,
		Minutes: int(validFor / time.Minute),
		Year:    time.Now().Year(),
	}
	if frontendURL != "" {
		data.ResetURL = strings.TrimRight(frontendURL, "/") + "/reset-password"
	}

	var html bytes.Buffer
	if err := resetCodeHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render reset code email: %w", err)
	}

	return Message{
		To:      to,
		Subject: "Password Reset OTP - " + brand,
		Text: fmt.Sprintf(
			"Your OTP for password reset is %s. It is valid for %d minutes. If you did not request this, please ignore this email.",
			code, data.Minutes,
		),
		HTML: html.String(),
	}, nil
}

// ContactEmail builds the notification sent to the site owner for a
// contact form submission. Replies go straight to the sender.
func ContactEmail(to string, m *models.ContactMessage) (Message, error) {
	var html bytes.Buffer
	if err := contactHTML.Execute(&html, m); err != nil {
		return Message{}, fmt.Errorf("render contact email: %w", err)
	}

	return Message{
		To:      to,
		ReplyTo: m.Email,
		Subject: "Portfolio Contact: " + m.Subject,
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s",
			m.Name, m.Email, m.Subject, m.Message),
		HTML: html.String(),
	}, nil
}
