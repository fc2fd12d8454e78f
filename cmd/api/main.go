package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"spotshot/internal/config"
	"spotshot/internal/database"
	"spotshot/internal/domain/favorite"
	"spotshot/internal/domain/moderation"
	"spotshot/internal/domain/spot"
	"spotshot/internal/domain/upload"
	"spotshot/internal/domain/user"
	"spotshot/internal/identity"
	"spotshot/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err := db.AutoMigrate(
		&spot.Spot{},
		&favorite.Favorite{},
		&moderation.SpotReport{},
		&user.Profile{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	spotRepo := spot.NewRepository(db)
	favoriteRepo := favorite.NewRepository(db)
	reportRepo := moderation.NewReportRepository(db)
	profileRepo := user.NewRepository(db)

	// Identity records live in the external auth service. Without
	// credentials the cascade delete stops at the profile stage.
	var identityDeleter user.IdentityDeleter
	if cfg.AuthServiceURL != "" && cfg.AuthServiceKey != "" {
		identityDeleter = identity.NewClient(cfg.AuthServiceURL, cfg.AuthServiceKey)
	} else {
		log.Println("Warning: auth service credentials not set; user deletion will skip the identity stage")
	}

	moderationService := moderation.NewService(spotRepo, reportRepo, profileRepo)
	userService := user.NewService(profileRepo, favoriteRepo, reportRepo, spotRepo, identityDeleter)

	spotHandler := spot.NewHandler(spotRepo)
	favoriteHandler := favorite.NewHandler(favoriteRepo)
	moderationHandler := moderation.NewHandler(moderationService)
	userHandler := user.NewHandler(userService)
	uploadHandler := upload.NewHandler(cfg)

	if !cfg.HasCloudinary() {
		log.Println("Warning: Cloudinary credentials not found; upload signing will not be available")
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ErrorLogger())

	start := time.Now()

	api := r.Group("/api")
	{
		spotHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
		favoriteHandler.RegisterRoutes(api)
		uploadHandler.RegisterRoutes(api)

		if cfg.ModeratorJWTSecret != "" {
			moderationHandler.RegisterRoutes(api, middleware.RequireModerator(cfg.ModeratorJWTSecret))
		} else {
			log.Println("Warning: MODERATOR_JWT_SECRET not set; moderation endpoints are open")
			moderationHandler.RegisterRoutes(api)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"uptime":    time.Since(start).Seconds(),
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	log.Printf("Spotshot API running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
