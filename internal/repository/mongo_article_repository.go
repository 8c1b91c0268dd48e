package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"museum-review/internal/domain"
)

// ArticlesCollection is the Mongo collection holding articles.
const ArticlesCollection = "articles"

// MongoArticleRepository implements ArticleRepository on a MongoDB collection.
type MongoArticleRepository struct {
	coll *mongo.Collection
}

// NewMongoArticleRepository creates a repository on db's articles collection.
func NewMongoArticleRepository(db *mongo.Database) *MongoArticleRepository {
	return &MongoArticleRepository{coll: db.Collection(ArticlesCollection)}
}

// EnsureIndexes creates the index used by reviewer queues.
func (r *MongoArticleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create status index: %w", err)
	}
	return nil
}

// Insert stores a new article document.
func (r *MongoArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	doc := *article
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Get returns a single article.
func (r *MongoArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if err := normalize(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByStatus returns articles in any of statuses, newest first.
func (r *MongoArticleRepository) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Article, error) {
	filter := bson.M{}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": domain.AliasesOf(statuses...)}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := make([]domain.Article, 0)
	for cursor.Next(ctx) {
		var a domain.Article
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		if err := normalize(&a); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// Update applies patch with FindOneAndUpdate, which evaluates the status and
// updated_at filters and the write as one document-level atomic operation.
func (r *MongoArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, expected ...domain.Status) (*domain.Article, error) {
	// BSON dates carry milliseconds.
	updatedAt := time.Now().UTC().Truncate(time.Millisecond)
	if patch.ExpectedUpdatedAt != nil {
		updatedAt = domain.NextUpdatedAt(time.Now(), *patch.ExpectedUpdatedAt, time.Millisecond)
	}
	set := bson.M{"updated_at": updatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.SetTags {
		tags := patch.Tags
		if tags == nil {
			tags = []string{}
		}
		set["tags"] = tags
	}
	if patch.FileURL != nil {
		set["file_url"] = *patch.FileURL
	}

	filter := bson.M{"_id": id}
	if len(expected) > 0 {
		filter["status"] = bson.M{"$in": domain.AliasesOf(expected...)}
	}
	if patch.ExpectedUpdatedAt != nil {
		filter["updated_at"] = *patch.ExpectedUpdatedAt
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a domain.Article
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		count, cerr := r.coll.CountDocuments(ctx, bson.M{"_id": id})
		if cerr != nil {
			return nil, fmt.Errorf("check article: %w", cerr)
		}
		if count == 0 {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if err := normalize(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// normalize maps legacy status spellings onto the canonical enum.
func normalize(a *domain.Article) error {
	status, err := domain.ParseStatus(string(a.Status))
	if err != nil {
		return fmt.Errorf("article %s: %w", a.ID, err)
	}
	a.Status = status
	return nil
}
