package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ParseArticleStatus matches a status string case-insensitively.
func ParseArticleStatus(s string) (ArticleStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusDraft):
		return StatusDraft, nil
	case string(StatusPublished):
		return StatusPublished, nil
	case string(StatusArchived):
		return StatusArchived, nil
	}
	return "", ErrorInvalidArgument{Message: fmt.Sprintf("invalid article status %q", s)}
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaOther MediaType = "other"
)

func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MediaImage):
		return MediaImage, nil
	case string(MediaVideo):
		return MediaVideo, nil
	case string(MediaAudio):
		return MediaAudio, nil
	case string(MediaOther):
		return MediaOther, nil
	}
	return "", ErrorInvalidArgument{Message: fmt.Sprintf("invalid media type %q", s)}
}

type Article struct {
	ID              uint          `json:"id" gorm:"primarykey"`
	AuthorID        uint          `json:"author_id" gorm:"not null;index"`
	Author          User          `json:"author" gorm:"foreignKey:AuthorID"`
	CategoryID      uint          `json:"category_id" gorm:"not null"`
	Category        Category      `json:"category" gorm:"foreignKey:CategoryID"`
	Title           string        `json:"title" gorm:"not null"`
	ContentMarkdown string        `json:"content_markdown" gorm:"type:text"`
	ContentHTML     string        `json:"content_html" gorm:"type:text"`
	Status          ArticleStatus `json:"status" gorm:"default:'draft'"`
	// VersionCounter is the per-article monotonic version allocator. It only
	// ever moves forward; deleting a version leaves a gap in the sequence.
	VersionCounter int            `json:"-" gorm:"not null;default:0"`
	MediaItems     []Media        `json:"media_items" gorm:"foreignKey:ArticleID"`
	Comments       []Comment      `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	Likes          []ArticleLike  `json:"likes,omitempty" gorm:"foreignKey:ArticleID"`
	Favorites      []Favorite     `json:"-" gorm:"foreignKey:ArticleID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

type Media struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ArticleID   uint      `json:"article_id" gorm:"not null;index"`
	URL         string    `json:"url" gorm:"not null"`
	Type        MediaType `json:"type" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
