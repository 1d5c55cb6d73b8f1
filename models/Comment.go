package models

import (
	"time"
)

// Comment lives embedded in its parent Post and has no identity of its own.
type Comment struct {
	Text string    `json:"text" bson:"text"`
	User string    `json:"user" bson:"user"`
	Date time.Time `json:"date" bson:"date"`
}

// CommentRequest is the client-facing body for POST /api/posts/:id/comments.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
	User string `json:"user" validate:"required"`
}

// ToComment stamps the request with the append time.
func (r CommentRequest) ToComment() Comment {
	return Comment{
		Text: r.Text,
		User: r.User,
		Date: time.Now(),
	}
}
