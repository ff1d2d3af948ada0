package models

import "time"

type ArticleLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_user_like"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_user_fav"`
	Article   Article   `json:"article" gorm:"foreignKey:ArticleID"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_user_fav"`
	CreatedAt time.Time `json:"created_at"`
}
