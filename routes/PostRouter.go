package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HalgasAdrian/CS5610-Coursework/controllers"
)

func PostRouter(incomingRoutes *gin.Engine, pc *controllers.PostController) {
	posts := incomingRoutes.Group("/api/posts")

	posts.POST("", pc.CreatePost)
	posts.GET("", pc.GetPosts)
	posts.GET("/search", pc.SearchPosts)
	posts.GET("/stats", pc.GetStats)
	posts.PATCH("/:id/like", pc.LikePost)
	posts.POST("/:id/comments", pc.AddComment)
}
