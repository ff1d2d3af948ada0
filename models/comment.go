package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	ArticleID       uint           `json:"article_id" gorm:"not null;index"`
	UserID          uint           `json:"user_id" gorm:"not null"`
	User            User           `json:"user" gorm:"foreignKey:UserID"`
	ParentCommentID *uint          `json:"parent_comment_id"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Likes           []CommentLike  `json:"likes,omitempty" gorm:"foreignKey:CommentID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

type CommentLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CommentID uint      `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `json:"created_at"`
}
