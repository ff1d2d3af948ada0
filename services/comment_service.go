package services

import (
	"errors"

	"knowledgehub-api/models"
	"knowledgehub-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(articleID uint, req models.CreateCommentRequest, userID uint) (*models.Comment, error)
	GetComments(articleID uint) ([]models.Comment, error)
	UpdateComment(commentID uint, req models.UpdateCommentRequest, userID uint) (*models.Comment, error)
	DeleteComment(commentID, userID uint) error
	LikeComment(commentID, userID uint) error
	UnlikeComment(commentID, userID uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

func (s *commentService) CreateComment(articleID uint, req models.CreateCommentRequest, userID uint) (*models.Comment, error) {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentCommentID)
		if err != nil {
			return nil, translateNotFound(err, "parent comment not found")
		}
		if parent.ArticleID != articleID {
			return nil, models.ErrorInvalidArgument{Message: "parent comment belongs to another article"}
		}
	}

	comment := &models.Comment{
		ArticleID:       articleID,
		UserID:          userID,
		ParentCommentID: req.ParentCommentID,
		Text:            req.Text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(comment.ID)
}

func (s *commentService) GetComments(articleID uint) ([]models.Comment, error) {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	return s.commentRepo.GetByArticleID(articleID)
}

func (s *commentService) UpdateComment(commentID uint, req models.UpdateCommentRequest, userID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, translateNotFound(err, "comment not found")
	}

	if comment.UserID != userID {
		return nil, models.ErrorForbidden{Message: "only the comment author can update it"}
	}

	comment.Text = req.Text
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(commentID)
}

func (s *commentService) DeleteComment(commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return translateNotFound(err, "comment not found")
	}

	if comment.UserID != userID {
		return models.ErrorForbidden{Message: "only the comment author can delete it"}
	}

	return s.commentRepo.Delete(commentID)
}

func (s *commentService) LikeComment(commentID, userID uint) error {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		return translateNotFound(err, "comment not found")
	}

	if err := s.commentRepo.AddLike(commentID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "comment already liked"}
		}
		return err
	}
	return nil
}

func (s *commentService) UnlikeComment(commentID, userID uint) error {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		return translateNotFound(err, "comment not found")
	}
	return s.commentRepo.RemoveLike(commentID, userID)
}
