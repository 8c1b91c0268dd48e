package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var litSession = &auth.Session{Email: "lit@christuniversity.in", Role: auth.RoleReviewerLiterature}

// withSession stands in for middleware.RequireSession in handler tests.
func withSession(session *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, session)
		c.Next()
	}
}

func sampleArticle(status domain.Status) *domain.Article {
	return &domain.Article{
		ID:    "5b0c8f0e-3f55-4f0e-9d55-2f1d3c1b9a11",
		Title: "Chola Bronzes of Thanjavur",
		Authors: []domain.Author{
			{Name: "Asha Rao", Email: "asha@christuniversity.in", Designation: "Professor"},
		},
		NumAuthors:          1,
		SubmitterEmail:      "asha@christuniversity.in",
		Keywords:            "Chola bronzes",
		SimilarityReportURL: "https://files.example/reports/sim.pdf",
		AIReportURL:         "https://files.example/reports/ai.pdf",
		FileURL:             "https://docs.google.com/document/d/1AbC",
		Status:              status,
		CreatedAt:           time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

type formFile struct {
	field, filename, contentType string
	data                         []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, f := range files {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + f.field + `"; filename="` + f.filename + `"`}
		header["Content-Type"] = []string{f.contentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
