package repositories

import (
	"context"
	"time"

	"knowledgehub-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const versionOpTimeout = 5 * time.Second

type ArticleVersionRepository interface {
	Insert(version *models.ArticleVersion) error
	GetByArticleAndNumber(articleID uint, versionNumber int) (*models.ArticleVersion, error)
	GetAllByArticleID(articleID uint) ([]models.ArticleVersion, error)
	DeleteOne(articleID uint, versionNumber int, id primitive.ObjectID) error
	DeleteByArticleID(articleID uint) error
	CountByArticleID(articleID uint) (int64, error)
	DistinctArticleIDs() ([]uint, error)
}

type articleVersionRepository struct {
	collection *mongo.Collection
}

func NewArticleVersionRepository(db *mongo.Database) ArticleVersionRepository {
	return &articleVersionRepository{collection: db.Collection("article_versions")}
}

func (r *articleVersionRepository) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), versionOpTimeout)
}

func (r *articleVersionRepository) Insert(version *models.ArticleVersion) error {
	ctx, cancel := r.ctx()
	defer cancel()

	res, err := r.collection.InsertOne(ctx, version)
	if err != nil {
		// The unique (article_id, version_number) index turns the loser of a
		// concurrent edit race into a retryable conflict.
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrorConflict{Message: "version number already exists for this article"}
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		version.ID = oid
	}
	return nil
}

func (r *articleVersionRepository) GetByArticleAndNumber(articleID uint, versionNumber int) (*models.ArticleVersion, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	var version models.ArticleVersion
	err := r.collection.FindOne(ctx, bson.M{
		"article_id":     articleID,
		"version_number": versionNumber,
	}).Decode(&version)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *articleVersionRepository) GetAllByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "edited_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"article_id": articleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var versions []models.ArticleVersion
	if err := cursor.All(ctx, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// DeleteOne removes exactly one snapshot. Remaining versions keep their
// numbers; the sequence may contain gaps afterwards.
func (r *articleVersionRepository) DeleteOne(articleID uint, versionNumber int, id primitive.ObjectID) error {
	ctx, cancel := r.ctx()
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":            id,
		"article_id":     articleID,
		"version_number": versionNumber,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *articleVersionRepository) DeleteByArticleID(articleID uint) error {
	ctx, cancel := r.ctx()
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"article_id": articleID})
	return err
}

func (r *articleVersionRepository) CountByArticleID(articleID uint) (int64, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"article_id": articleID})
}

func (r *articleVersionRepository) DistinctArticleIDs() ([]uint, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	raw, err := r.collection.Distinct(ctx, "article_id", bson.M{})
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case int32:
			ids = append(ids, uint(n))
		case int64:
			ids = append(ids, uint(n))
		case float64:
			ids = append(ids, uint(n))
		}
	}
	return ids, nil
}
