package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"knowledgehub-api/handlers"
	"knowledgehub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionService struct {
	summaries  []models.VersionSummary
	getErr     error
	restoreErr error
	deleteErr  error

	lastArticleID     uint
	lastVersionNumber int
	lastRequesterID   uint
}

func (s *fakeVersionService) GetVersions(articleID, requesterUserID uint) ([]models.VersionSummary, error) {
	s.lastArticleID = articleID
	s.lastRequesterID = requesterUserID
	return s.summaries, s.getErr
}

func (s *fakeVersionService) RestoreVersion(articleID uint, versionNumber int, requesterUserID uint) error {
	s.lastArticleID = articleID
	s.lastVersionNumber = versionNumber
	s.lastRequesterID = requesterUserID
	return s.restoreErr
}

func (s *fakeVersionService) DeleteVersion(articleID uint, versionNumber int, requesterUserID uint) error {
	s.lastArticleID = articleID
	s.lastVersionNumber = versionNumber
	s.lastRequesterID = requesterUserID
	return s.deleteErr
}

func newVersionRouter(svc *fakeVersionService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewArticleVersionHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/articles/:id/versions", h.GetArticleVersions)
	r.POST("/articles/:id/versions/:version_number/restore", h.RestoreArticleVersion)
	r.DELETE("/articles/:id/versions/:version_number", h.DeleteArticleVersion)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetArticleVersionsSuccess(t *testing.T) {
	svc := &fakeVersionService{
		summaries: []models.VersionSummary{
			{ID: "65f0c2", ArticleID: 12, VersionNumber: 2, Title: "older", EditedAt: time.Now().UTC(), EditedBy: "alice"},
		},
	}
	r := newVersionRouter(svc, 7)

	w, body := doRequest(t, r, http.MethodGet, "/articles/12/versions")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 12, svc.lastArticleID)
	assert.EqualValues(t, 7, svc.lastRequesterID)

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, "older", entry["title"])
	assert.EqualValues(t, 2, entry["version_number"])
}

func TestGetArticleVersionsNotFound(t *testing.T) {
	svc := &fakeVersionService{getErr: models.ErrorNotFound{Message: "no versions found for this article"}}
	r := newVersionRouter(svc, 7)

	w, body := doRequest(t, r, http.MethodGet, "/articles/12/versions")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no versions found for this article", body["code_message"])
}

func TestGetArticleVersionsBadArticleID(t *testing.T) {
	svc := &fakeVersionService{}
	r := newVersionRouter(svc, 7)

	w, _ := doRequest(t, r, http.MethodGet, "/articles/abc/versions")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.lastArticleID)
}

func TestRestoreArticleVersionSuccess(t *testing.T) {
	svc := &fakeVersionService{}
	r := newVersionRouter(svc, 3)

	w, _ := doRequest(t, r, http.MethodPost, "/articles/5/versions/2/restore")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, svc.lastArticleID)
	assert.Equal(t, 2, svc.lastVersionNumber)
	assert.EqualValues(t, 3, svc.lastRequesterID)
}

func TestRestoreArticleVersionForbidden(t *testing.T) {
	svc := &fakeVersionService{restoreErr: models.ErrorForbidden{Message: "only the article owner can restore a version"}}
	r := newVersionRouter(svc, 3)

	w, _ := doRequest(t, r, http.MethodPost, "/articles/5/versions/2/restore")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRestoreArticleVersionRejectsNonPositiveNumber(t *testing.T) {
	svc := &fakeVersionService{}
	r := newVersionRouter(svc, 3)

	w, _ := doRequest(t, r, http.MethodPost, "/articles/5/versions/0/restore")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.lastVersionNumber)
}

func TestDeleteArticleVersionSuccess(t *testing.T) {
	svc := &fakeVersionService{}
	r := newVersionRouter(svc, 9)

	w, _ := doRequest(t, r, http.MethodDelete, "/articles/5/versions/4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, svc.lastVersionNumber)
	assert.EqualValues(t, 9, svc.lastRequesterID)
}

func TestDeleteArticleVersionErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", models.ErrorNotFound{Message: "version not found"}, http.StatusNotFound},
		{"forbidden", models.ErrorForbidden{Message: "only the editor of this version can delete it"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeVersionService{deleteErr: tc.err}
			r := newVersionRouter(svc, 9)

			w, _ := doRequest(t, r, http.MethodDelete, "/articles/5/versions/4")
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}
