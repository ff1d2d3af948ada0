package services_test

import (
	"testing"

	"knowledgehub-api/models"
	"knowledgehub-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  = uint(1)
	otherID  = uint(2)
	category = "engineering"
)

func newArticleFixture(t *testing.T) (services.ArticleService, *fakeArticleRepo, *fakeVersionRepo) {
	t.Helper()
	articleRepo := newFakeArticleRepo()
	versionRepo := newFakeVersionRepo()
	categoryRepo := newFakeCategoryRepo(models.Category{ID: 1, Name: "Engineering", Slug: category})
	svc := services.NewArticleService(articleRepo, categoryRepo, versionRepo, services.NewArticleLocker())
	return svc, articleRepo, versionRepo
}

func seedArticle(t *testing.T, repo *fakeArticleRepo) *models.Article {
	t.Helper()
	article := &models.Article{
		AuthorID:        ownerID,
		CategoryID:      1,
		Title:           "Original title",
		ContentMarkdown: "original **body**",
		ContentHTML:     "<p>original <strong>body</strong></p>",
		Status:          models.StatusPublished,
		MediaItems: []models.Media{
			{URL: "https://cdn.example.com/a.png", Type: models.MediaImage, Description: "diagram"},
		},
	}
	require.NoError(t, repo.Create(article))
	return article
}

func updateReq(title, body string) models.UpdateArticleRequest {
	return models.UpdateArticleRequest{
		Title:           title,
		ContentMarkdown: body,
		Status:          "published",
		CategorySlug:    category,
	}
}

func TestUpdateArticleSnapshotsPreEditState(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	req := updateReq("New title", "new body")
	req.MediaItems = []models.MediaItemRequest{
		{URL: "https://cdn.example.com/b.mp4", Type: "video", Description: "demo"},
	}
	updated, err := svc.UpdateArticle(article.ID, req, ownerID)
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "new body", updated.ContentMarkdown)
	require.Len(t, updated.MediaItems, 1)
	assert.Equal(t, models.MediaVideo, updated.MediaItems[0].Type)

	stored, err := versions.GetByArticleAndNumber(article.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Original title", stored.Title)
	assert.Equal(t, "original **body**", stored.ContentMarkdown)
	assert.Equal(t, "<p>original <strong>body</strong></p>", stored.ContentHTML)
	assert.Equal(t, ownerID, stored.EditedByUserID)
	require.Len(t, stored.MediaItems, 1)
	assert.Equal(t, "https://cdn.example.com/a.png", stored.MediaItems[0].URL)
	assert.Equal(t, "image", stored.MediaItems[0].Type)
}

func TestUpdateArticleVersionNumbersStrictlyIncrease(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	for i := 0; i < 5; i++ {
		_, err := svc.UpdateArticle(article.ID, updateReq("title", "body"), ownerID)
		require.NoError(t, err)
	}

	history, err := versions.GetAllByArticleID(article.ID)
	require.NoError(t, err)
	require.Len(t, history, 5)
	seen := make(map[int]bool)
	for _, v := range history {
		assert.False(t, seen[v.VersionNumber], "duplicate version number %d", v.VersionNumber)
		seen[v.VersionNumber] = true
	}
	for n := 1; n <= 5; n++ {
		assert.True(t, seen[n], "missing version number %d", n)
	}
}

func TestUpdateArticleNonOwnerForbidden(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	_, err := svc.UpdateArticle(article.ID, updateReq("hijacked", "hijacked"), otherID)
	assert.IsType(t, models.ErrorForbidden{}, err)

	// Neither store moved.
	count, _ := versions.CountByArticleID(article.ID)
	assert.Zero(t, count)
	live, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original title", live.Title)
}

func TestUpdateArticleInvalidStatus(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	req := updateReq("title", "body")
	req.Status = "retracted"
	_, err := svc.UpdateArticle(article.ID, req, ownerID)
	assert.IsType(t, models.ErrorInvalidArgument{}, err)

	count, _ := versions.CountByArticleID(article.ID)
	assert.Zero(t, count)
}

func TestUpdateArticleUnknownCategory(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	req := updateReq("title", "body")
	req.CategorySlug = "does-not-exist"
	_, err := svc.UpdateArticle(article.ID, req, ownerID)
	assert.IsType(t, models.ErrorNotFound{}, err)

	count, _ := versions.CountByArticleID(article.ID)
	assert.Zero(t, count)
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc, _, _ := newArticleFixture(t)

	_, err := svc.UpdateArticle(999, updateReq("title", "body"), ownerID)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestUpdateArticleConflictOnDuplicateVersionNumber(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	// A racing edit already wrote version 1. Forcing the allocator onto the
	// same number must trip the version store's uniqueness constraint and
	// leave the live row untouched.
	require.NoError(t, versions.Insert(&models.ArticleVersion{
		ArticleID:     article.ID,
		VersionNumber: 1,
		Title:         "racing snapshot",
	}))
	forced := 1
	repo.forceNextVersion = &forced

	_, err := svc.UpdateArticle(article.ID, updateReq("loser", "loser"), ownerID)
	assert.IsType(t, models.ErrorConflict{}, err)

	live, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original title", live.Title)
	count, _ := versions.CountByArticleID(article.ID)
	assert.EqualValues(t, 1, count)
}

func TestUpdateArticleRendersMarkdown(t *testing.T) {
	svc, repo, _ := newArticleFixture(t)
	article := seedArticle(t, repo)

	updated, err := svc.UpdateArticle(article.ID, updateReq("title", "# Heading"), ownerID)
	require.NoError(t, err)
	assert.Contains(t, updated.ContentHTML, "<h1")
	assert.Contains(t, updated.ContentHTML, "Heading")
}

func TestDeleteArticleCascadesVersionHistory(t *testing.T) {
	svc, repo, versions := newArticleFixture(t)
	article := seedArticle(t, repo)

	_, err := svc.UpdateArticle(article.ID, updateReq("second", "second"), ownerID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteArticle(article.ID, ownerID))

	exists, _ := repo.Exists(article.ID)
	assert.False(t, exists)
	count, _ := versions.CountByArticleID(article.ID)
	assert.Zero(t, count)
}

func TestDeleteArticleNonOwnerForbidden(t *testing.T) {
	svc, repo, _ := newArticleFixture(t)
	article := seedArticle(t, repo)

	err := svc.DeleteArticle(article.ID, otherID)
	assert.IsType(t, models.ErrorForbidden{}, err)
	exists, _ := repo.Exists(article.ID)
	assert.True(t, exists)
}

func TestLikeArticleTwiceConflicts(t *testing.T) {
	svc, repo, _ := newArticleFixture(t)
	article := seedArticle(t, repo)

	require.NoError(t, svc.LikeArticle(article.ID, otherID))
	err := svc.LikeArticle(article.ID, otherID)
	assert.IsType(t, models.ErrorConflict{}, err)

	require.NoError(t, svc.UnlikeArticle(article.ID, otherID))
	require.NoError(t, svc.LikeArticle(article.ID, otherID))
}

func TestGetArticlePublicHidesUnpublished(t *testing.T) {
	svc, repo, _ := newArticleFixture(t)
	article := seedArticle(t, repo)
	article.Status = models.StatusDraft
	require.NoError(t, repo.Update(article))

	_, err := svc.GetArticle(article.ID, true)
	assert.IsType(t, models.ErrorNotFound{}, err)

	got, err := svc.GetArticle(article.ID, false)
	require.NoError(t, err)
	assert.Equal(t, article.ID, got.ID)
}
