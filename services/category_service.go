package services

import (
	"errors"

	"knowledgehub-api/models"
	"knowledgehub-api/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	_, err := s.categoryRepo.GetBySlug(req.Slug)
	if err == nil {
		return nil, models.ErrorConflict{Message: "category already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, translateNotFound(err, "category not found")
	}
	return category, nil
}
