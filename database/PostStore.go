package database

import (
	"context"
	"strconv"

	"github.com/HalgasAdrian/CS5610-Coursework/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultListLimit = 10
	searchLimit      = 5
)

// PostStore owns all access to the posts collection. One instance is built in
// main and handed to the controller.
type PostStore struct {
	collection *mongo.Collection
}

func NewPostStore(client *mongo.Client) *PostStore {
	return &PostStore{collection: OpenCollection(client, "posts")}
}

// buildListFilter turns the optional tag/published query params into a filter.
// A missing param leaves that dimension unfiltered; published matches the
// literal "true" and treats everything else as false.
func buildListFilter(tag, published string) bson.M {
	filter := bson.M{}
	if tag != "" {
		filter["tags"] = tag
	}
	if published != "" {
		filter["published"] = published == "true"
	}
	return filter
}

// buildListOptions fixes the ordering to newest-first and parses the limit,
// falling back to the default when absent or unparsable.
func buildListOptions(limit string) *options.FindOptions {
	n, err := strconv.Atoi(limit)
	if err != nil {
		n = defaultListLimit
	}
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(n))
}

// searchPipeline matches q as a case-insensitive substring of title or
// content, scores each match by likes + comment count, and keeps the top
// results by that score.
func searchPipeline(q string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"$or": []bson.M{
				{"title": bson.M{"$regex": q, "$options": "i"}},
				{"content": bson.M{"$regex": q, "$options": "i"}},
			},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"engagement": bson.M{"$add": bson.A{
				"$likes",
				bson.M{"$size": bson.M{"$ifNull": bson.A{"$comments", bson.A{}}}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"engagement": -1}}},
		bson.D{{Key: "$limit", Value: searchLimit}},
	}
}

// statsPipeline folds the whole collection into one record. An empty
// collection produces no record at all, which the caller maps to an empty
// object.
func statsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalPosts":     bson.M{"$sum": 1},
			"totalLikes":     bson.M{"$sum": "$likes"},
			"avgLikes":       bson.M{"$avg": "$likes"},
			"publishedCount": bson.M{"$sum": bson.M{"$cond": bson.A{"$published", 1, 0}}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"_id": 0}}},
	}
}

func (s *PostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	if _, err := s.collection.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *PostStore) List(ctx context.Context, tag, published, limit string) ([]models.Post, error) {
	cursor, err := s.collection.Find(ctx, buildListFilter(tag, published), buildListOptions(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementLikes applies the atomic +1 and returns the new counter.
// mongo.ErrNoDocuments passes through when the id does not exist.
func (s *PostStore) IncrementLikes(ctx context.Context, id primitive.ObjectID) (int, error) {
	update := bson.M{"$inc": bson.M{"likes": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err != nil {
		return 0, err
	}
	return post.Likes, nil
}

// AddComment atomically appends to the comments array.
// mongo.ErrNoDocuments passes through when the id does not exist.
func (s *PostStore) AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	update := bson.M{"$push": bson.M{"comments": comment}}
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update).Err()
	return err
}

func (s *PostStore) Search(ctx context.Context, q string) ([]models.SearchResult, error) {
	cursor, err := s.collection.Aggregate(ctx, searchPipeline(q))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.SearchResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Stats returns nil with no error when the collection is empty.
func (s *PostStore) Stats(ctx context.Context) (*models.BlogStats, error) {
	cursor, err := s.collection.Aggregate(ctx, statsPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.BlogStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
