package models

import (
	"testing"
)

func TestCreatePostRequestToPost(t *testing.T) {
	post := CreatePostRequest{
		Title:   "  A Title  ",
		Content: "body",
		Author:  "ada",
	}.ToPost()

	if post.Title != "A Title" {
		t.Errorf("title = %q, want trimmed", post.Title)
	}
	if post.Likes != 0 {
		t.Errorf("likes = %d, want 0", post.Likes)
	}
	if post.Published {
		t.Error("published should default to false")
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Errorf("tags = %v, want empty slice", post.Tags)
	}
	if post.Comments == nil || len(post.Comments) != 0 {
		t.Errorf("comments = %v, want empty slice", post.Comments)
	}
	if post.ID.IsZero() {
		t.Error("id was not generated")
	}
	if post.CreatedAt.IsZero() {
		t.Error("createdAt was not set")
	}
}

func TestCreatePostRequestToPostKeepsTags(t *testing.T) {
	post := CreatePostRequest{
		Title:   "t",
		Content: "c",
		Author:  "a",
		Tags:    []string{"go", "go"},
	}.ToPost()

	// no uniqueness constraint on tags
	if len(post.Tags) != 2 {
		t.Errorf("tags = %v, want both entries kept", post.Tags)
	}
}

func TestCommentRequestToComment(t *testing.T) {
	comment := CommentRequest{Text: "hi", User: "ada"}.ToComment()

	if comment.Text != "hi" || comment.User != "ada" {
		t.Errorf("comment = %+v", comment)
	}
	if comment.Date.IsZero() {
		t.Error("date was not stamped")
	}
}
