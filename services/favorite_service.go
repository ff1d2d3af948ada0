package services

import (
	"errors"

	"knowledgehub-api/models"
	"knowledgehub-api/repositories"

	"gorm.io/gorm"
)

type FavoriteService interface {
	AddFavorite(articleID, userID uint) error
	RemoveFavorite(articleID, userID uint) error
	GetFavorites(userID uint) ([]models.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	articleRepo  repositories.ArticleRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, articleRepo repositories.ArticleRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		articleRepo:  articleRepo,
	}
}

func (s *favoriteService) AddFavorite(articleID, userID uint) error {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorNotFound{Message: "article not found"}
	}

	if err := s.favoriteRepo.Create(&models.Favorite{ArticleID: articleID, UserID: userID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "article already favorited"}
		}
		return err
	}
	return nil
}

func (s *favoriteService) RemoveFavorite(articleID, userID uint) error {
	favorited, err := s.favoriteRepo.Exists(articleID, userID)
	if err != nil {
		return err
	}
	if !favorited {
		return models.ErrorNotFound{Message: "favorite not found"}
	}
	return s.favoriteRepo.Delete(articleID, userID)
}

func (s *favoriteService) GetFavorites(userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.GetByUserID(userID)
}
