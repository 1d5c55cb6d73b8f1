package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HalgasAdrian/CS5610-Coursework/controllers"
	"github.com/HalgasAdrian/CS5610-Coursework/database"
	"github.com/HalgasAdrian/CS5610-Coursework/intializers"
	"github.com/HalgasAdrian/CS5610-Coursework/routes"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	intializers.LoadEnvVariables()
}

func main() {
	client, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer database.Disconnect(client)

	postController := controllers.NewPostController(database.NewPostStore(client))

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.PostRouter(router, postController)

	PORT := os.Getenv("PORT")
	if PORT == "" {
		PORT = "3000"
	}

	log.Info().Str("port", PORT).Msg("Server starting")
	if err := router.Run(":" + PORT); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
