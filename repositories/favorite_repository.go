package repositories

import (
	"knowledgehub-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Delete(articleID, userID uint) error
	GetByUserID(userID uint) ([]models.Favorite, error)
	Exists(articleID, userID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *favoriteRepository) Delete(articleID, userID uint) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.Favorite{}).Error
}

func (r *favoriteRepository) GetByUserID(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Article.Author").
		Preload("Article.Category").
		Preload("Article.MediaItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) Exists(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}
