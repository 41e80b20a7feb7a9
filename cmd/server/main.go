package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
	"github.com/v-selfnet/bistro-boss-server/internal/cache"
	"github.com/v-selfnet/bistro-boss-server/internal/config"
	apihttp "github.com/v-selfnet/bistro-boss-server/internal/http"
	"github.com/v-selfnet/bistro-boss-server/internal/repository"
	"github.com/v-selfnet/bistro-boss-server/internal/service"
)

func main() {
	cfg := config.Load()

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	menuRepo := repository.NewMongoMenuRepository(mongoDB)
	reviewRepo := repository.NewMongoReviewRepository(mongoDB)
	cartRepo := repository.NewMongoCartRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)

	catalogCache := cache.NewRedisCache(redisClient)
	catalogService := service.NewCatalogService(menuRepo, reviewRepo, catalogCache)
	cartService := service.NewCartService(cartRepo)
	userService := service.NewUserService(userRepo)

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	guard := apihttp.NewGuard(codec, userService)

	router := apihttp.NewRouter(
		guard,
		apihttp.NewCatalogHandler(catalogService, cfg.RequestTimeout),
		apihttp.NewCartHandler(cartService, cfg.RequestTimeout),
		apihttp.NewUserHandler(userService, cfg.RequestTimeout),
		apihttp.NewTokenHandler(codec),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Bistro Boss server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	log.Println("server exited")
}
