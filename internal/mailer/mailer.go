package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"

	"taskhub/internal/config"
)

// Email is a transient value handed to a Sender and discarded.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(Email) error
}

// NewSender picks the transport from config: SMTP when enabled, the Resend
// HTTP API otherwise.
func NewSender(cfg config.EmailConfig) Sender {
	if cfg.SMTPEnabled {
		return &SMTPSender{cfg: cfg}
	}
	return &ResendSender{cfg: cfg}
}

type ResendSender struct {
	cfg config.EmailConfig
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) Send(e Email) error {
	body := resendRequest{
		From:    e.From,
		To:      []string{e.To},
		Subject: e.Subject,
		HTML:    e.HTML,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendAPIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}

type SMTPSender struct {
	cfg config.EmailConfig
}

func (s *SMTPSender) Send(e Email) error {
	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort

	msg := "From: " + e.From + "\r\n" +
		"To: " + e.To + "\r\n" +
		"Subject: " + e.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		e.HTML

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.SMTPUser, []string{e.To}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
