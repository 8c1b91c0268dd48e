package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/mocks"
	"museum-review/internal/notification"
	"museum-review/internal/workflow"
)

var techSession = &auth.Session{Email: "tech@christuniversity.in", Role: auth.RoleReviewerTechnical}

func newReviewRouter(svc *mocks.MockReviewServiceInterface, session *auth.Session) *gin.Engine {
	h := NewReviewHandler(svc)
	router := gin.New()
	review := router.Group("/api/v1/review", withSession(session))
	review.GET("/stages", h.ListStages)
	review.GET("/stages/:stage/articles", h.ListPending)
	review.POST("/stages/:stage/articles/:id/approve", h.Approve)
	review.POST("/stages/:stage/articles/:id/reject", h.Reject)
	review.GET("/articles/:id", h.GetArticle)
	review.PATCH("/articles/:id", h.Edit)
	return router
}

func TestReviewHandler_ListStages(t *testing.T) {
	svc := mocks.NewMockReviewServiceInterface(t)
	stages := workflow.DefaultStages()
	svc.EXPECT().Stages(litSession).Return(stages[3:], nil)

	w := serve(newReviewRouter(svc, litSession), httptest.NewRequest(http.MethodGet, "/api/v1/review/stages", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Stages []StageResponse `json:"stages"`
	}
	decode(t, w, &response)
	require.Len(t, response.Stages, 2)
	assert.Equal(t, "literature", response.Stages[0].Name)
	assert.Equal(t, "LIT_REJECTED", response.Stages[0].RejectionStatus)
	assert.True(t, response.Stages[1].RequiresArchive)
}

func TestReviewHandler_ListPending(t *testing.T) {
	t.Run("returns the queue", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().ListPending(mock.Anything, techSession, "technical").
			Return([]domain.Article{*sampleArticle(domain.StatusITApproved)}, nil)

		w := serve(newReviewRouter(svc, techSession), httptest.NewRequest(http.MethodGet, "/api/v1/review/stages/technical/articles", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"IT_APPROVED"`)
		assert.Contains(t, w.Body.String(), `"submitter_email":"asha@christuniversity.in"`)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().ListPending(mock.Anything, techSession, "admin").Return(nil, domain.ErrForbidden)

		w := serve(newReviewRouter(svc, techSession), httptest.NewRequest(http.MethodGet, "/api/v1/review/stages/admin/articles", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReviewHandler_Approve(t *testing.T) {
	id := sampleArticle(domain.StatusSubmitted).ID
	path := "/api/v1/review/stages/technical/articles/" + id + "/approve"

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"stale state is a conflict", &domain.StaleStateError{ArticleID: id, Expected: domain.StatusITApproved, Actual: domain.StatusTechApproved}, http.StatusConflict},
		{"terminal article is unprocessable", &domain.InvalidTransitionError{ArticleID: id, From: domain.StatusPublished, Reason: "status is terminal"}, http.StatusUnprocessableEntity},
		{"missing article", domain.ErrNotFound, http.StatusNotFound},
		{"no session", domain.ErrUnauthorized, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockReviewServiceInterface(t)
			svc.EXPECT().Approve(mock.Anything, techSession, "technical", id).Return(nil, tt.err)

			w := serve(newReviewRouter(svc, techSession), httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("returns the moved article", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().Approve(mock.Anything, techSession, "technical", id).Return(&workflow.TransitionResult{
			Article: sampleArticle(domain.StatusTechApproved),
			From:    domain.StatusITApproved,
		}, nil)

		w := serve(newReviewRouter(svc, techSession), httptest.NewRequest(http.MethodPost, path, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var response TransitionResponse
		decode(t, w, &response)
		assert.Equal(t, "TECH_APPROVED", response.Article.Status)
		assert.Equal(t, "IT_APPROVED", response.From)
		assert.Empty(t, response.Notification)
	})
}

func TestReviewHandler_Reject(t *testing.T) {
	id := sampleArticle(domain.StatusSubmitted).ID
	path := "/api/v1/review/stages/technical/articles/" + id + "/reject"

	t.Run("passes the reason and reports the notification", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().Reject(mock.Anything, techSession, "technical", id, "Insufficient citations").
			Return(&workflow.TransitionResult{
				Article:      sampleArticle(domain.StatusTechRejected),
				From:         domain.StatusITApproved,
				Notification: notification.OutcomeQueued,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"reason":"Insufficient citations"}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(newReviewRouter(svc, techSession), req)

		require.Equal(t, http.StatusOK, w.Code)
		var response TransitionResponse
		decode(t, w, &response)
		assert.Equal(t, "TECH_REJECTED", response.Article.Status)
		assert.Equal(t, "queued", response.Notification)
	})

	t.Run("missing reason is refused by the engine", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().Reject(mock.Anything, techSession, "technical", id, "").
			Return(nil, &domain.InvalidTransitionError{ArticleID: id, Reason: "a rejection reason is required"})

		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(newReviewRouter(svc, techSession), req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "a rejection reason is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)

		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`reason=late`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(newReviewRouter(svc, techSession), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_Edit(t *testing.T) {
	id := sampleArticle(domain.StatusSubmitted).ID

	t.Run("only provided fields are passed", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		edited := sampleArticle(domain.StatusITApproved)
		edited.Title = "Chola Bronzes"
		svc.EXPECT().
			Edit(mock.Anything, techSession, id, mock.MatchedBy(func(title *string) bool {
				return title != nil && *title == "Chola Bronzes"
			}), (*string)(nil)).
			Return(edited, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/review/articles/"+id, strings.NewReader(`{"title":"Chola Bronzes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(newReviewRouter(svc, techSession), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Chola Bronzes"`)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := mocks.NewMockReviewServiceInterface(t)
		svc.EXPECT().Edit(mock.Anything, techSession, id, mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("title", "title_required"))

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/review/articles/"+id, strings.NewReader(`{"title":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(newReviewRouter(svc, techSession), req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"validation failed","fields":{"title":"title_required"}}`, w.Body.String())
	})
}

func TestReviewHandler_GetArticle(t *testing.T) {
	svc := mocks.NewMockReviewServiceInterface(t)
	article := sampleArticle(domain.StatusAdminApproved)
	svc.EXPECT().Get(mock.Anything, techSession, article.ID).Return(article, nil)

	w := serve(newReviewRouter(svc, techSession), httptest.NewRequest(http.MethodGet, "/api/v1/review/articles/"+article.ID, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), article.SimilarityReportURL)
}
