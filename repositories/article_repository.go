package repositories

import (
	"fmt"

	"knowledgehub-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByAuthorAndTitle(username, title string) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	Search(term string) ([]models.Article, error)
	Update(article *models.Article) error
	ReplaceMedia(articleID uint, items []models.Media) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	AllocateVersionNumber(articleID uint) (int, error)
	AddLike(articleID, userID uint) error
	RemoveLike(articleID, userID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("MediaItems").
		Preload("Comments.User").
		Preload("Likes").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetByAuthorAndTitle(username, title string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("MediaItems").
		Preload("Comments.User").
		Preload("Likes").
		Joins("JOIN users ON users.id = articles.author_id").
		Where("users.username = ? AND articles.title = ?", username, title).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).
		Preload("Author").
		Preload("Category").
		Preload("MediaItems")

	if isPublic {
		query = query.Where("articles.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("articles.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Search(term string) ([]models.Article, error) {
	var articles []models.Article
	pattern := "%" + term + "%"
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("MediaItems").
		Where("articles.status = ?", models.StatusPublished).
		Where("title ILIKE ? OR content_markdown ILIKE ?", pattern, pattern).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Omit("MediaItems", "Comments", "Likes", "Favorites", "Author", "Category").
		Save(article).Error
}

// ReplaceMedia swaps an article's media list wholesale. The live media rows are
// never patched in place.
func (r *articleRepository) ReplaceMedia(articleID uint, items []models.Media) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].ArticleID = articleID
		}
		return tx.Create(&items).Error
	})
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

func (r *articleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AllocateVersionNumber bumps the article's version counter in a single
// statement and returns the new value. Atomic on the Postgres side, so two
// concurrent edits can never be handed the same number.
func (r *articleRepository) AllocateVersionNumber(articleID uint) (int, error) {
	var n int
	err := r.db.Raw(
		"UPDATE articles SET version_counter = version_counter + 1 WHERE id = ? AND deleted_at IS NULL RETURNING version_counter",
		articleID,
	).Scan(&n).Error
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *articleRepository) AddLike(articleID, userID uint) error {
	return r.db.Create(&models.ArticleLike{ArticleID: articleID, UserID: userID}).Error
}

func (r *articleRepository) RemoveLike(articleID, userID uint) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.ArticleLike{}).Error
}
