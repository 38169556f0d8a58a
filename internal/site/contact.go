package site

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
)

// ContactMessage is one contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

func (m ContactMessage) validate() error {
	if strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("email and message are required")
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return fmt.Errorf("name and email must be a single line")
	}
	return nil
}

type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// SMTPMailer delivers contact messages through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	cfg  config.SMTP
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(_ context.Context, msg ContactMessage) error {
	if !m.cfg.Configured() {
		return fmt.Errorf("SMTP credentials not configured")
	}
	to := m.cfg.Recipient()

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	raw := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{to}, raw); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

// contactForm returns just the form fragment for HTMX to swap in.
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *Server) contact(c *gin.Context) {
	msg := ContactMessage{
		Name:    c.PostForm("fullName"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	err := msg.validate()
	if err == nil {
		err = s.mailer.Send(c.Request.Context(), msg)
	}
	if err != nil {
		log.Printf("[%s] Error sending email: %v", reqID(c), err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Printf("[%s] Email sent successfully from %s (%s)", reqID(c), msg.Name, msg.Email)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
