package services

import (
	"time"

	"knowledgehub-api/models"
	"knowledgehub-api/repositories"
)

type ArticleVersionService interface {
	GetVersions(articleID, requesterUserID uint) ([]models.VersionSummary, error)
	RestoreVersion(articleID uint, versionNumber int, requesterUserID uint) error
	DeleteVersion(articleID uint, versionNumber int, requesterUserID uint) error
}

type articleVersionService struct {
	articleRepo repositories.ArticleRepository
	versionRepo repositories.ArticleVersionRepository
	userRepo    repositories.UserRepository
	locker      *ArticleLocker
}

func NewArticleVersionService(
	articleRepo repositories.ArticleRepository,
	versionRepo repositories.ArticleVersionRepository,
	userRepo repositories.UserRepository,
	locker *ArticleLocker,
) ArticleVersionService {
	return &articleVersionService{
		articleRepo: articleRepo,
		versionRepo: versionRepo,
		userRepo:    userRepo,
		locker:      locker,
	}
}

// GetVersions lists an article's history newest-first. Any authenticated user
// may browse history; ownership is only required for restore and update.
func (s *articleVersionService) GetVersions(articleID, requesterUserID uint) ([]models.VersionSummary, error) {
	if _, err := s.userRepo.GetByID(requesterUserID); err != nil {
		return nil, translateNotFound(err, "user not found")
	}

	versions, err := s.versionRepo.GetAllByArticleID(articleID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, models.ErrorNotFound{Message: "no versions found for this article"}
	}

	// Resolve editor display names once per distinct editor.
	editors := make(map[uint]string)
	summaries := make([]models.VersionSummary, 0, len(versions))
	for _, v := range versions {
		name, ok := editors[v.EditedByUserID]
		if !ok {
			if user, err := s.userRepo.GetByID(v.EditedByUserID); err == nil {
				name = user.Username
			}
			editors[v.EditedByUserID] = name
		}
		summaries = append(summaries, models.VersionSummary{
			ID:            v.ID.Hex(),
			ArticleID:     v.ArticleID,
			VersionNumber: v.VersionNumber,
			Title:         v.Title,
			ContentHTML:   v.ContentHTML,
			EditedAt:      v.EditedAt,
			EditedBy:      name,
			MediaItems:    v.MediaItems,
		})
	}
	return summaries, nil
}

// RestoreVersion overwrites the live article from a historical snapshot. It is
// a live-state overwrite, not a versioned edit: no version record is written
// and the version count is unchanged.
func (s *articleVersionService) RestoreVersion(articleID uint, versionNumber int, requesterUserID uint) error {
	s.locker.Lock(articleID)
	defer s.locker.Unlock(articleID)

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return translateNotFound(err, "article not found")
	}

	if article.AuthorID != requesterUserID {
		return models.ErrorForbidden{Message: "only the article owner can restore a version"}
	}

	version, err := s.versionRepo.GetByArticleAndNumber(articleID, versionNumber)
	if err != nil {
		return translateNotFound(err, "version not found")
	}

	article.Title = version.Title
	article.ContentMarkdown = version.ContentMarkdown
	article.ContentHTML = version.ContentHTML
	article.UpdatedAt = time.Now().UTC()

	if err := s.articleRepo.Update(article); err != nil {
		return err
	}

	// Snapshot media are value copies; restoring materializes fresh live rows.
	return s.articleRepo.ReplaceMedia(articleID, MaterializeMedia(articleID, version.MediaItems))
}

// DeleteVersion removes a single snapshot. Only the user who made that edit
// may delete it, which is not necessarily the article's current owner.
// Remaining versions keep their numbers.
func (s *articleVersionService) DeleteVersion(articleID uint, versionNumber int, requesterUserID uint) error {
	version, err := s.versionRepo.GetByArticleAndNumber(articleID, versionNumber)
	if err != nil {
		return translateNotFound(err, "version not found")
	}

	if version.EditedByUserID != requesterUserID {
		return models.ErrorForbidden{Message: "only the editor of this version can delete it"}
	}

	if err := s.versionRepo.DeleteOne(articleID, versionNumber, version.ID); err != nil {
		return translateNotFound(err, "version not found")
	}
	return nil
}
