package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/config"
	dbpkg "github.com/Ashugithubb/BookSaloon-Backend/internal/db"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/routes"
)

func main() {

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "booksaloon-api").Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
