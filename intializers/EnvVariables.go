package intializers

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using process environment")
	}
}
