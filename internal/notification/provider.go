// Package notification delivers reviewer decisions to submitters by email.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrEmailDisabled is returned by the provider used when no email service is
// configured.
var ErrEmailDisabled = errors.New("email delivery is not configured")

// EmailProvider sends a templated email.
type EmailProvider interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// EmailJSConfig configures the EmailJS provider.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// Enabled reports whether enough settings are present to send mail.
func (c EmailJSConfig) Enabled() bool {
	return strings.TrimSpace(c.ServiceID) != "" && strings.TrimSpace(c.PublicKey) != ""
}

// NewEmailProvider builds an EmailJS provider, or a disabled provider when
// the service is not configured.
func NewEmailProvider(cfg EmailJSConfig) EmailProvider {
	if !cfg.Enabled() {
		return disabledProvider{}
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailJSProvider{
		endpoint:   endpoint,
		serviceID:  cfg.ServiceID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		client:     &http.Client{Timeout: timeout},
	}
}

// EmailJSProvider sends mail through the EmailJS REST API.
type EmailJSProvider struct {
	endpoint   string
	serviceID  string
	publicKey  string
	privateKey string
	client     *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the template parameters to EmailJS.
func (p *EmailJSProvider) Send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      p.serviceID,
		TemplateID:     templateID,
		UserID:         p.publicKey,
		AccessToken:    p.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs error: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}

type disabledProvider struct{}

func (disabledProvider) Send(context.Context, string, map[string]string) error {
	return ErrEmailDisabled
}
