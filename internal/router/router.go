package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskforge-dev/taskforge/internal/auth"
	"github.com/taskforge-dev/taskforge/internal/config"
	"github.com/taskforge-dev/taskforge/internal/handlers"
	"github.com/taskforge-dev/taskforge/internal/middleware"
	"gorm.io/gorm"
)

func New(cfg *config.Config, database *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handlers.NewAuthHandler(database, tokens)
	projectHandler := handlers.NewProjectHandler(database, cfg.EnforceOwnership)
	requireAuth := middleware.RequireAuth(database, tokens)

	r.GET("/health", handlers.HealthCheck)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", requireAuth, authHandler.Me)

	// One handler per (method, path). Edit and Delete sit behind auth so the
	// ownership policy has an authenticated caller to check against.
	r.POST("/new", requireAuth, projectHandler.Create)
	r.GET("/all", requireAuth, projectHandler.ListMine)
	r.GET("/projects/:id", requireAuth, projectHandler.View)
	r.PUT("/edit/:id", requireAuth, projectHandler.Edit)
	r.DELETE("/delete/:id", requireAuth, projectHandler.Delete)

	return r
}
