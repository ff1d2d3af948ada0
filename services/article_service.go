package services

import (
	"errors"
	"time"

	"knowledgehub-api/markdown"
	"knowledgehub-api/models"
	"knowledgehub-api/repositories"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error)
	GetArticle(id uint, isPublic bool) (*models.Article, error)
	GetArticleByAuthorAndTitle(username, title string) (*models.Article, error)
	GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	SearchArticles(term string) ([]models.Article, error)
	UpdateArticle(articleID uint, req models.UpdateArticleRequest, editorUserID uint) (*models.Article, error)
	DeleteArticle(articleID, userID uint) error
	LikeArticle(articleID, userID uint) error
	UnlikeArticle(articleID, userID uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	versionRepo  repositories.ArticleVersionRepository
	locker       *ArticleLocker
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	versionRepo repositories.ArticleVersionRepository,
	locker *ArticleLocker,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		versionRepo:  versionRepo,
		locker:       locker,
	}
}

// translateNotFound maps store-level missing-record errors onto the service
// error taxonomy; anything else passes through unchanged.
func translateNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrorNotFound{Message: message}
	}
	return err
}

func mediaFromRequest(articleID uint, items []models.MediaItemRequest) ([]models.Media, error) {
	media := make([]models.Media, 0, len(items))
	for _, item := range items {
		mediaType, err := models.ParseMediaType(item.Type)
		if err != nil {
			return nil, err
		}
		media = append(media, models.Media{
			ArticleID:   articleID,
			URL:         item.URL,
			Type:        mediaType,
			Description: item.Description,
		})
	}
	return media, nil
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error) {
	status, err := models.ParseArticleStatus(req.Status)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetBySlug(req.CategorySlug)
	if err != nil {
		return nil, translateNotFound(err, "category not found")
	}

	media, err := mediaFromRequest(0, req.MediaItems)
	if err != nil {
		return nil, err
	}

	rendered, err := markdown.ToHTML(req.ContentMarkdown)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		AuthorID:        userID,
		CategoryID:      category.ID,
		Title:           req.Title,
		ContentMarkdown: req.ContentMarkdown,
		ContentHTML:     rendered,
		Status:          status,
		MediaItems:      media,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, isPublic bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "article not found")
	}

	if isPublic && article.Status != models.StatusPublished {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	return article, nil
}

func (s *articleService) GetArticleByAuthorAndTitle(username, title string) (*models.Article, error) {
	article, err := s.articleRepo.GetByAuthorAndTitle(username, title)
	if err != nil {
		return nil, translateNotFound(err, "article not found")
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, isPublic)
}

func (s *articleService) SearchArticles(term string) ([]models.Article, error) {
	return s.articleRepo.Search(term)
}

// UpdateArticle is the versioned edit path. The pre-edit state is snapshotted
// into the version store before the live row is touched: a crash between the
// two writes leaves an extra history entry, never a missing one.
func (s *articleService) UpdateArticle(articleID uint, req models.UpdateArticleRequest, editorUserID uint) (*models.Article, error) {
	s.locker.Lock(articleID)
	defer s.locker.Unlock(articleID)

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, translateNotFound(err, "article not found")
	}

	if article.AuthorID != editorUserID {
		return nil, models.ErrorForbidden{Message: "only the article owner can update it"}
	}

	status, err := models.ParseArticleStatus(req.Status)
	if err != nil {
		return nil, err
	}

	media, err := mediaFromRequest(articleID, req.MediaItems)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetBySlug(req.CategorySlug)
	if err != nil {
		return nil, translateNotFound(err, "category not found")
	}

	versionNumber, err := s.articleRepo.AllocateVersionNumber(articleID)
	if err != nil {
		return nil, translateNotFound(err, "article not found")
	}

	snapshot := &models.ArticleVersion{
		ArticleID:       articleID,
		VersionNumber:   versionNumber,
		Title:           article.Title,
		ContentMarkdown: article.ContentMarkdown,
		ContentHTML:     article.ContentHTML,
		EditedAt:        time.Now().UTC(),
		EditedByUserID:  editorUserID,
		MediaItems:      SnapshotMedia(article.MediaItems),
	}
	if err := s.versionRepo.Insert(snapshot); err != nil {
		return nil, err
	}

	rendered, err := markdown.ToHTML(req.ContentMarkdown)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.ContentMarkdown = req.ContentMarkdown
	article.ContentHTML = rendered
	article.Status = status
	article.CategoryID = category.ID
	article.VersionCounter = versionNumber
	article.UpdatedAt = time.Now().UTC()

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	if err := s.articleRepo.ReplaceMedia(articleID, media); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}

// DeleteArticle removes the live row and synchronously cascades into the
// version store. Anything left behind by a crash in between is picked up by
// the orphan sweep job.
func (s *articleService) DeleteArticle(articleID, userID uint) error {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return translateNotFound(err, "article not found")
	}

	if article.AuthorID != userID {
		return models.ErrorForbidden{Message: "only the article owner can delete it"}
	}

	if err := s.articleRepo.Delete(articleID); err != nil {
		return err
	}

	return s.versionRepo.DeleteByArticleID(articleID)
}

func (s *articleService) LikeArticle(articleID, userID uint) error {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorNotFound{Message: "article not found"}
	}

	if err := s.articleRepo.AddLike(articleID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "article already liked"}
		}
		return err
	}
	return nil
}

func (s *articleService) UnlikeArticle(articleID, userID uint) error {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorNotFound{Message: "article not found"}
	}
	return s.articleRepo.RemoveLike(articleID, userID)
}
