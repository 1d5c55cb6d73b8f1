package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"strings"
	"time"
)

type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Author    string             `json:"author" bson:"author"`
	Tags      []string           `json:"tags" bson:"tags"`
	Likes     int                `json:"likes" bson:"likes"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	Published bool               `json:"published" bson:"published"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreatePostRequest is the client-facing body for POST /api/posts, kept
// separate from the stored document.
type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required,max=100"`
	Content   string   `json:"content" validate:"required"`
	Author    string   `json:"author" validate:"required"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// ToPost applies the schema defaults and returns a document ready to insert.
func (r CreatePostRequest) ToPost() Post {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		ID:        primitive.NewObjectID(),
		Title:     strings.TrimSpace(r.Title),
		Content:   r.Content,
		Author:    r.Author,
		Tags:      tags,
		Likes:     0,
		Comments:  []Comment{},
		Published: r.Published,
		CreatedAt: time.Now(),
	}
}

// SearchResult is a Post extended with the engagement score computed by the
// search pipeline.
type SearchResult struct {
	Post       `bson:",inline"`
	Engagement int `json:"engagement" bson:"engagement"`
}

// BlogStats is the single record produced by the stats pipeline.
type BlogStats struct {
	TotalPosts     int     `json:"totalPosts" bson:"totalPosts"`
	TotalLikes     int     `json:"totalLikes" bson:"totalLikes"`
	AvgLikes       float64 `json:"avgLikes" bson:"avgLikes"`
	PublishedCount int     `json:"publishedCount" bson:"publishedCount"`
}
