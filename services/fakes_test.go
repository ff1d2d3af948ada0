package services_test

import (
	"sort"
	"strings"
	"time"

	"knowledgehub-api/models"
	"knowledgehub-api/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// fakeArticleRepo is an in-memory live store. Unimplemented interface methods
// come from the embedded nil interface and panic if reached.
type fakeArticleRepo struct {
	repositories.ArticleRepository
	articles map[uint]models.Article
	counter  map[uint]int
	likes    map[[2]uint]bool
	nextID   uint

	// forceNextVersion makes AllocateVersionNumber hand out a fixed number,
	// simulating a racing writer that already consumed it.
	forceNextVersion *int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[uint]models.Article),
		counter:  make(map[uint]int),
		likes:    make(map[[2]uint]bool),
	}
}

func copyArticle(a models.Article) models.Article {
	out := a
	out.MediaItems = append([]models.Media(nil), a.MediaItems...)
	return out
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	r.nextID++
	article.ID = r.nextID
	article.CreatedAt = time.Now().UTC()
	article.UpdatedAt = article.CreatedAt
	r.articles[article.ID] = copyArticle(*article)
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := copyArticle(a)
	return &out, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := copyArticle(*article)
	stored.MediaItems = r.articles[article.ID].MediaItems
	r.articles[article.ID] = stored
	return nil
}

func (r *fakeArticleRepo) ReplaceMedia(articleID uint, items []models.Media) error {
	a, ok := r.articles[articleID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.MediaItems = append([]models.Media(nil), items...)
	r.articles[articleID] = a
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) Exists(id uint) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

func (r *fakeArticleRepo) AllocateVersionNumber(articleID uint) (int, error) {
	if _, ok := r.articles[articleID]; !ok {
		return 0, gorm.ErrRecordNotFound
	}
	if r.forceNextVersion != nil {
		return *r.forceNextVersion, nil
	}
	r.counter[articleID]++
	return r.counter[articleID], nil
}

func (r *fakeArticleRepo) AddLike(articleID, userID uint) error {
	key := [2]uint{articleID, userID}
	if r.likes[key] {
		return gorm.ErrDuplicatedKey
	}
	r.likes[key] = true
	return nil
}

func (r *fakeArticleRepo) RemoveLike(articleID, userID uint) error {
	delete(r.likes, [2]uint{articleID, userID})
	return nil
}

// fakeVersionRepo is an in-memory version store with the same unique
// (article_id, version_number) constraint the Mongo collection enforces.
type fakeVersionRepo struct {
	versions []models.ArticleVersion
}

func newFakeVersionRepo() *fakeVersionRepo {
	return &fakeVersionRepo{}
}

func copyVersion(v models.ArticleVersion) models.ArticleVersion {
	out := v
	out.MediaItems = append([]models.MediaSnapshot(nil), v.MediaItems...)
	return out
}

func (r *fakeVersionRepo) Insert(version *models.ArticleVersion) error {
	for _, v := range r.versions {
		if v.ArticleID == version.ArticleID && v.VersionNumber == version.VersionNumber {
			return models.ErrorConflict{Message: "version number already exists for this article"}
		}
	}
	version.ID = primitive.NewObjectID()
	r.versions = append(r.versions, copyVersion(*version))
	return nil
}

func (r *fakeVersionRepo) GetByArticleAndNumber(articleID uint, versionNumber int) (*models.ArticleVersion, error) {
	for _, v := range r.versions {
		if v.ArticleID == articleID && v.VersionNumber == versionNumber {
			out := copyVersion(v)
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeVersionRepo) GetAllByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	var out []models.ArticleVersion
	for _, v := range r.versions {
		if v.ArticleID == articleID {
			out = append(out, copyVersion(v))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EditedAt.Equal(out[j].EditedAt) {
			return out[i].EditedAt.After(out[j].EditedAt)
		}
		return out[i].VersionNumber > out[j].VersionNumber
	})
	return out, nil
}

func (r *fakeVersionRepo) DeleteOne(articleID uint, versionNumber int, id primitive.ObjectID) error {
	for i, v := range r.versions {
		if v.ArticleID == articleID && v.VersionNumber == versionNumber && v.ID == id {
			r.versions = append(r.versions[:i], r.versions[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeVersionRepo) DeleteByArticleID(articleID uint) error {
	kept := r.versions[:0]
	for _, v := range r.versions {
		if v.ArticleID != articleID {
			kept = append(kept, v)
		}
	}
	r.versions = kept
	return nil
}

func (r *fakeVersionRepo) CountByArticleID(articleID uint) (int64, error) {
	var n int64
	for _, v := range r.versions {
		if v.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (r *fakeVersionRepo) DistinctArticleIDs() ([]uint, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for _, v := range r.versions {
		if !seen[v.ArticleID] {
			seen[v.ArticleID] = true
			ids = append(ids, v.ArticleID)
		}
	}
	return ids, nil
}

type fakeUserRepo struct {
	repositories.UserRepository
	users map[uint]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type fakeCategoryRepo struct {
	repositories.CategoryRepository
	categories []models.Category
}

func newFakeCategoryRepo(categories ...models.Category) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: categories}
}

func (r *fakeCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Slug, slug) {
			out := c
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
