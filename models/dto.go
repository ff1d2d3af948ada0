package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MediaItemRequest struct {
	URL         string `json:"url" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type CreateArticleRequest struct {
	Title           string             `json:"title" binding:"required,min=1,max=200"`
	ContentMarkdown string             `json:"content_markdown" binding:"required"`
	Status          string             `json:"status" binding:"required"`
	CategorySlug    string             `json:"category_slug" binding:"required"`
	MediaItems      []MediaItemRequest `json:"media_items"`
}

type UpdateArticleRequest struct {
	Title           string             `json:"title" binding:"required,min=1,max=200"`
	ContentMarkdown string             `json:"content_markdown" binding:"required"`
	Status          string             `json:"status" binding:"required"`
	CategorySlug    string             `json:"category_slug" binding:"required"`
	MediaItems      []MediaItemRequest `json:"media_items"`
}

// VersionSummary is the list-view projection of an ArticleVersion.
type VersionSummary struct {
	ID            string          `json:"id"`
	ArticleID     uint            `json:"article_id"`
	VersionNumber int             `json:"version_number"`
	Title         string          `json:"title"`
	ContentHTML   string          `json:"content_html"`
	EditedAt      time.Time       `json:"edited_at"`
	EditedBy      string          `json:"edited_by"`
	MediaItems    []MediaSnapshot `json:"media_items"`
}

type CreateCommentRequest struct {
	Text            string `json:"text" binding:"required"`
	ParentCommentID *uint  `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"required,min=1,max=100"`
}

type ArticleListParams struct {
	Status     string `form:"status"`
	AuthorID   uint   `form:"author_id"`
	CategoryID uint   `form:"category_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}
