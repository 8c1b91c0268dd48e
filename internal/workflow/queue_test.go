package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-review/internal/domain"
	"museum-review/internal/workflow"
)

func TestQueue_ListPending(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	queue := workflow.NewQueue(f.repo)

	first := f.seed(t, domain.StatusSubmitted)
	time.Sleep(2 * time.Millisecond)
	second := f.seed(t, domain.StatusSubmitted)
	f.seed(t, domain.StatusAdminApproved)

	got, err := queue.ListPending(ctx, domain.StatusSubmitted)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest submission first")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestQueue_RejectedArticleLeavesEveryQueue(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	queue := workflow.NewQueue(f.repo)
	a := f.seed(t, domain.StatusAdminApproved)

	req := f.request(t, workflow.StageIT, workflow.ActionReject, a.ID)
	req.Reason = "not an IT topic"
	_, err := f.engine.Transition(ctx, req)
	require.NoError(t, err)

	for _, stage := range f.table.Stages() {
		pending, err := queue.ListPending(ctx, stage.CurrentStatus)
		require.NoError(t, err)
		for _, p := range pending {
			assert.NotEqual(t, a.ID, p.ID, "rejected article listed in %s", stage.Name)
		}
	}
}

func TestQueue_InvalidStatus(t *testing.T) {
	queue := workflow.NewQueue(newEngineFixture(t).repo)
	_, err := queue.ListPending(context.Background(), "ready")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRequireStatus(t *testing.T) {
	a := &domain.Article{ID: "a1", Status: domain.StatusLitApproved}
	assert.NoError(t, workflow.RequireStatus(a, domain.StatusLitApproved))

	var stale *domain.StaleStateError
	assert.ErrorAs(t, workflow.RequireStatus(a, domain.StatusTechApproved), &stale)

	a.Status = domain.StatusLitRejected
	var invalid *domain.InvalidTransitionError
	assert.ErrorAs(t, workflow.RequireStatus(a, domain.StatusLitApproved), &invalid)
}
