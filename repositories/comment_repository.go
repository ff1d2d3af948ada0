package repositories

import (
	"knowledgehub-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetByArticleID(articleID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	AddLike(commentID, userID uint) error
	RemoveLike(commentID, userID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").First(&comment, id).Error
	return &comment, err
}

func (r *commentRepository) GetByArticleID(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Preload("Likes").
		Where("article_id = ?", articleID).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Omit("User", "Likes").Save(comment).Error
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, id).Error
	})
}

func (r *commentRepository) AddLike(commentID, userID uint) error {
	return r.db.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error
}

func (r *commentRepository) RemoveLike(commentID, userID uint) error {
	return r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{}).Error
}
