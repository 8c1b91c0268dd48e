// Package events publishes article status changes for downstream consumers
// (search indexers, the live admin dashboard).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"museum-review/internal/domain"
	"museum-review/internal/logger"
)

// DefaultSubject is the NATS subject used when none is configured.
const DefaultSubject = "museum.articles.status"

// StatusChanged is emitted after every committed transition.
type StatusChanged struct {
	ArticleID string        `json:"article_id"`
	Title     string        `json:"title"`
	From      domain.Status `json:"from"`
	To        domain.Status `json:"to"`
	Stage     string        `json:"stage,omitempty"`
	Actor     string        `json:"actor,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Source    string        `json:"source"`
	Version   string        `json:"version"`
}

// Publisher emits status change events. Failures are reported to the caller,
// who logs them; they never undo a transition.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChanged) error
	Close()
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL     string
	Subject string
	Name    string
}

// NATSPublisher publishes events to NATS.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS, or returns a no-op publisher when no URL is
// configured.
func NewPublisher(cfg NATSConfig) (Publisher, error) {
	if cfg.URL == "" {
		return NoopPublisher{}, nil
	}
	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATSPublisher{conn: nc, subject: subject}, nil
}

// PublishStatusChanged marshals and publishes event.
func (p *NATSPublisher) PublishStatusChanged(ctx context.Context, event StatusChanged) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Source = "museum-review"
	event.Version = "1.0"

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}
	logger.DebugContext(ctx, "Published status event",
		"article_id", event.ArticleID,
		"from", string(event.From),
		"to", string(event.To),
	)
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}

// NoopPublisher discards events.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(context.Context, StatusChanged) error { return nil }

func (NoopPublisher) Close() {}
