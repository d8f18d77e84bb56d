package main

import (
	"log"

	"jobboard-api/internal/config"
	"jobboard-api/internal/database"
	"jobboard-api/internal/handlers"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Object storage client for the resume bucket
	store, err := storage.NewBucketStore(storage.BucketConfig{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		UseSSL:    cfg.StorageUseSSL,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 4. Services (store handle injected, no globals)
	userService := services.NewUserService(db, cfg.JWTSecret)
	jobService := services.NewJobService(db, userService)
	resumeService := services.NewResumeService(db, store, userService)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	resumeHandler := handlers.NewResumeHandler(resumeService)

	// 6. Router
	r := handlers.NewRouter(authHandler, jobHandler, resumeHandler)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
