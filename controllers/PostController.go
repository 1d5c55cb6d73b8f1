package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HalgasAdrian/CS5610-Coursework/models"
)

var validate = validator.New()

// PostStore is what the controller needs from the database layer; the
// concrete implementation is database.PostStore.
type PostStore interface {
	Insert(ctx context.Context, post models.Post) (models.Post, error)
	List(ctx context.Context, tag, published, limit string) ([]models.Post, error)
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (int, error)
	AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error
	Search(ctx context.Context, q string) ([]models.SearchResult, error)
	Stats(ctx context.Context) (*models.BlogStats, error)
}

type PostController struct {
	store PostStore
}

func NewPostController(store PostStore) *PostController {
	return &PostController{store: store}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// trim before validating so a whitespace-only title fails required
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	post, err := pc.store.Insert(ctx, req.ToPost())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
}

func (pc *PostController) GetPosts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := pc.store.List(ctx, c.Query("tag"), c.Query("published"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(posts), "data": posts})
}

func (pc *PostController) LikePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid post ID"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	likes, err := pc.store.IncrementLikes(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post liked", "data": gin.H{"likes": likes}})
}

func (pc *PostController) AddComment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid post ID"})
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	comment := req.ToComment()
	err = pc.store.AddComment(ctx, id, comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": comment})
}

func (pc *PostController) SearchPosts(c *gin.Context) {
	q := c.Query("q")

	ctx, cancel := requestContext()
	defer cancel()

	results, err := pc.store.Search(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "query": q, "count": len(results), "data": results})
}

func (pc *PostController) GetStats(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	stats, err := pc.store.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if stats == nil {
		// empty collection
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
