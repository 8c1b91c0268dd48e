package notification_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum-review/internal/domain"
	"museum-review/internal/mocks"
	"museum-review/internal/notification"
)

func rejectedArticle() domain.Article {
	return domain.Article{
		ID:             "article-1",
		Title:          "Chola Bronzes of Thanjavur",
		Authors:        []domain.Author{{Name: "Asha Rao", Email: "asha@christuniversity.in"}, {Name: "Vikram Iyer"}},
		SubmitterEmail: "",
		Status:         domain.StatusTechRejected,
	}
}

func TestDispatcher_NotifyRejection(t *testing.T) {
	t.Run("sends template params to the first author when no submitter email", func(t *testing.T) {
		provider := mocks.NewMockEmailProvider(t)
		d := notification.NewDispatcher(provider, notification.DispatcherConfig{TemplateID: "template_x"})
		defer d.Close()

		provider.EXPECT().
			Send(mock.Anything, "template_x", map[string]string{
				"to_email":         "asha@christuniversity.in",
				"to_name":          "Asha Rao",
				"article_title":    "Chola Bronzes of Thanjavur",
				"rejection_reason": "Insufficient citations",
			}).
			Return(nil).
			Once()

		outcome := d.NotifyRejection(context.Background(), rejectedArticle(), "Insufficient citations")
		assert.Equal(t, notification.OutcomeSent, outcome)
	})

	t.Run("skips articles without any recipient", func(t *testing.T) {
		provider := mocks.NewMockEmailProvider(t)
		d := notification.NewDispatcher(provider, notification.DispatcherConfig{})
		defer d.Close()

		article := rejectedArticle()
		article.Authors = []domain.Author{{Name: "Asha Rao"}}

		assert.Equal(t, notification.OutcomeSkipped, d.NotifyRejection(context.Background(), article, "r"))
		assert.Equal(t, notification.OutcomeSkipped, d.Enqueue(article, "r"))
	})

	t.Run("disabled provider is a skip", func(t *testing.T) {
		d := notification.NewDispatcher(notification.NewEmailProvider(notification.EmailJSConfig{}), notification.DispatcherConfig{})
		defer d.Close()

		assert.Equal(t, notification.OutcomeSkipped, d.NotifyRejection(context.Background(), rejectedArticle(), "r"))
	})

	t.Run("provider failure is reported, not returned", func(t *testing.T) {
		provider := mocks.NewMockEmailProvider(t)
		d := notification.NewDispatcher(provider, notification.DispatcherConfig{})
		defer d.Close()

		provider.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("emailjs error: 500")).Once()

		assert.Equal(t, notification.OutcomeFailed, d.NotifyRejection(context.Background(), rejectedArticle(), "r"))
	})

	t.Run("send is bounded by the timeout", func(t *testing.T) {
		provider := mocks.NewMockEmailProvider(t)
		d := notification.NewDispatcher(provider, notification.DispatcherConfig{SendTimeout: 20 * time.Millisecond})
		defer d.Close()

		provider.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ string, _ map[string]string) error {
				<-ctx.Done()
				return ctx.Err()
			}).Once()

		assert.Equal(t, notification.OutcomeFailed, d.NotifyRejection(context.Background(), rejectedArticle(), "r"))
	})
}

func TestDispatcher_EnqueueDeliversEveryEmailBeforeClose(t *testing.T) {
	provider := mocks.NewMockEmailProvider(t)
	d := notification.NewDispatcher(provider, notification.DispatcherConfig{Workers: 2, QueueSize: 1})

	var sent atomic.Int32
	provider.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, map[string]string) error {
			time.Sleep(5 * time.Millisecond)
			sent.Add(1)
			return nil
		}).Times(10)

	for i := 0; i < 10; i++ {
		assert.Equal(t, notification.OutcomeQueued, d.Enqueue(rejectedArticle(), "r"))
	}
	d.Close()

	assert.Equal(t, int32(10), sent.Load())
}

func TestDispatcher_EnqueueOnFullQueueFails(t *testing.T) {
	provider := mocks.NewMockEmailProvider(t)
	d := notification.NewDispatcher(provider, notification.DispatcherConfig{
		Workers:        1,
		QueueSize:      1,
		EnqueueTimeout: 20 * time.Millisecond,
	})

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	provider.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, map[string]string) error {
			started <- struct{}{}
			<-release
			return nil
		}).Times(2)

	assert.Equal(t, notification.OutcomeQueued, d.Enqueue(rejectedArticle(), "first"))
	<-started // the only worker is now busy
	assert.Equal(t, notification.OutcomeQueued, d.Enqueue(rejectedArticle(), "second"))

	begin := time.Now()
	assert.Equal(t, notification.OutcomeFailed, d.Enqueue(rejectedArticle(), "third"))
	assert.GreaterOrEqual(t, time.Since(begin), 20*time.Millisecond)

	close(release)
	d.Close()
}

func TestDispatcher_EnqueueAfterClose(t *testing.T) {
	d := notification.NewDispatcher(mocks.NewMockEmailProvider(t), notification.DispatcherConfig{})
	d.Close()
	d.Close()

	assert.Equal(t, notification.OutcomeFailed, d.Enqueue(rejectedArticle(), "r"))
}
