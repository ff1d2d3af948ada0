package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleVersion is an immutable snapshot of an article's content as it was
// immediately before the edit that produced it. Stored in the article_versions
// Mongo collection; once written a document is never mutated, only deleted as
// a whole.
type ArticleVersion struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArticleID       uint               `bson:"article_id" json:"article_id"`
	VersionNumber   int                `bson:"version_number" json:"version_number"`
	Title           string             `bson:"title" json:"title"`
	ContentMarkdown string             `bson:"content_markdown" json:"content_markdown"`
	ContentHTML     string             `bson:"content_html" json:"content_html"`
	EditedAt        time.Time          `bson:"edited_at" json:"edited_at"`
	EditedByUserID  uint               `bson:"edited_by_user_id" json:"edited_by_user_id"`
	MediaItems      []MediaSnapshot    `bson:"media_items" json:"media_items"`
}

// MediaSnapshot is a value copy of a live media row, embedded in the version
// document. It carries no reference back to the live media table.
type MediaSnapshot struct {
	URL         string `bson:"url" json:"url"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
}
