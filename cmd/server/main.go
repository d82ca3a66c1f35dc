package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atteraisanen/MovieGuessr/internal/cache"
	"github.com/atteraisanen/MovieGuessr/internal/config"
	"github.com/atteraisanen/MovieGuessr/internal/repository"
	"github.com/atteraisanen/MovieGuessr/internal/service"
	"github.com/atteraisanen/MovieGuessr/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection. The daily movie cache is optional: without Redis
	// every request falls through to Mongo.
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	var movieCache cache.MovieCache
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: Redis unavailable, serving without cache: %v", err)
	} else {
		log.Println("Connected to Redis")
		movieCache = cache.NewMovieCache(rdb)
	}

	// Wire repository and service
	movieRepo := repository.NewMovieRepo(db)
	movieSvc := service.NewMovieService(movieRepo, movieCache)

	router := rest.NewRouter(&rest.Container{
		MovieService: movieSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET /movie/")
		log.Println("  GET /movies/{title}")
		log.Println("  GET /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
