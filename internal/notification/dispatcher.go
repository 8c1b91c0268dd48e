package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"museum-review/internal/domain"
	"museum-review/internal/logger"
	"museum-review/internal/metrics"
)

const (
	// DefaultSendTimeout bounds a single email delivery attempt.
	DefaultSendTimeout = 15 * time.Second
	// DefaultEnqueueTimeout bounds how long Enqueue waits on a full queue.
	DefaultEnqueueTimeout = 2 * time.Second
	// DefaultRejectionTemplate is the EmailJS template used for rejections.
	DefaultRejectionTemplate = "template_rejection"
)

// Outcome is the informational result of a notification attempt.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
	// OutcomeQueued is returned by Enqueue; the delivery result is logged.
	OutcomeQueued Outcome = "queued"
)

type rejectionTask struct {
	article domain.Article
	reason  string
}

// Dispatcher sends rejection emails on a small worker pool so the review
// request never waits on the email provider.
type Dispatcher struct {
	provider       EmailProvider
	templateID     string
	sendTimeout    time.Duration
	enqueueTimeout time.Duration

	queue  chan rejectionTask
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// DispatcherConfig configures a Dispatcher.
type DispatcherConfig struct {
	TemplateID     string
	Workers        int
	QueueSize      int
	SendTimeout    time.Duration
	EnqueueTimeout time.Duration
}

// NewDispatcher creates a Dispatcher and starts its workers.
func NewDispatcher(provider EmailProvider, cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = cfg.Workers * 2
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = DefaultEnqueueTimeout
	}
	if cfg.TemplateID == "" {
		cfg.TemplateID = DefaultRejectionTemplate
	}

	d := &Dispatcher{
		provider:       provider,
		templateID:     cfg.TemplateID,
		sendTimeout:    cfg.SendTimeout,
		enqueueTimeout: cfg.EnqueueTimeout,
		queue:          make(chan rejectionTask, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for task := range d.queue {
		d.NotifyRejection(context.Background(), task.article, task.reason)
	}
}

// Enqueue schedules a rejection email. It returns OutcomeSkipped when the
// article has no recipient and OutcomeFailed when the dispatcher is closed or
// the queue stays full for the enqueue timeout; OutcomeQueued otherwise.
func (d *Dispatcher) Enqueue(article domain.Article, reason string) Outcome {
	if article.RecipientEmail() == "" {
		logger.Info("Rejection email skipped: no recipient",
			slog.String("article_id", article.ID))
		metrics.ObserveNotification(string(OutcomeSkipped))
		return OutcomeSkipped
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		logger.Warn("Rejection email dropped: dispatcher closed",
			slog.String("article_id", article.ID))
		metrics.ObserveNotification(string(OutcomeFailed))
		return OutcomeFailed
	}

	task := rejectionTask{article: article, reason: reason}
	select {
	case d.queue <- task:
		return OutcomeQueued
	default:
	}

	timer := time.NewTimer(d.enqueueTimeout)
	defer timer.Stop()
	select {
	case d.queue <- task:
		return OutcomeQueued
	case <-timer.C:
		logger.Error("Rejection email dropped: notification queue full",
			slog.String("article_id", article.ID),
			slog.Duration("waited", d.enqueueTimeout))
		metrics.ObserveNotification(string(OutcomeFailed))
		return OutcomeFailed
	}
}

// NotifyRejection sends the rejection email synchronously.
func (d *Dispatcher) NotifyRejection(ctx context.Context, article domain.Article, reason string) Outcome {
	log := logger.WithArticleID(article.ID)

	recipient := article.RecipientEmail()
	if recipient == "" {
		log.Info("Rejection email skipped: no recipient")
		metrics.ObserveNotification(string(OutcomeSkipped))
		return OutcomeSkipped
	}

	params := map[string]string{
		"to_email":         recipient,
		"to_name":          article.RecipientName(),
		"article_title":    article.Title,
		"rejection_reason": reason,
	}

	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	err := d.provider.Send(ctx, d.templateID, params)
	switch {
	case errors.Is(err, ErrEmailDisabled):
		log.Info("Rejection email skipped: delivery disabled")
		metrics.ObserveNotification(string(OutcomeSkipped))
		return OutcomeSkipped
	case err != nil:
		nerr := &domain.NotificationError{ArticleID: article.ID, Recipient: recipient, Err: err}
		log.Warn("Rejection email failed", slog.String("error", nerr.Error()))
		metrics.ObserveNotification(string(OutcomeFailed))
		return OutcomeFailed
	}

	log.Info("Rejection email sent", slog.String("recipient", recipient))
	metrics.ObserveNotification(string(OutcomeSent))
	return OutcomeSent
}

// Close stops accepting work and waits for queued emails to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.queue)
	d.wg.Wait()
}
