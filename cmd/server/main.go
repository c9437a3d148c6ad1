package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_api/internal/config"
	"portfolio_api/internal/handler"
	"portfolio_api/internal/middleware"
	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/service"
	"portfolio_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	// Fails hard when JWT_SECRET_KEY is absent; there is no fallback secret.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	projects := repository.NewCollection[model.Project](dbPool, model.CollectionProjects)
	techStack := repository.NewCollection[model.TechStack](dbPool, model.CollectionTechStack)
	experience := repository.NewCollection[model.Experience](dbPool, model.CollectionExperience)
	education := repository.NewCollection[model.Education](dbPool, model.CollectionEducation)
	testimonials := repository.NewCollection[model.Testimonial](dbPool, model.CollectionTestimonials)
	certificates := repository.NewCollection[model.Certificate](dbPool, model.CollectionCertificates)
	specializations := repository.NewCollection[model.Specialization](dbPool, model.CollectionSpecializations)
	messages := repository.NewCollection[model.Message](dbPool, model.CollectionMessages)
	about := repository.NewCollection[model.About](dbPool, model.CollectionAbout)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	aboutHandler := handler.NewAboutHandler(about)
	messageHandler := handler.NewMessageHandler(messages)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	router.Use(corsMiddleware(cfg.CORSOrigin))

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	authHandler.RegisterRoutes(router, jwtAuthMW)

	api := router.Group("/api")
	aboutHandler.RegisterRoutes(api)
	messageHandler.RegisterRoutes(api, jwtAuthMW)
	userHandler.RegisterRoutes(api, jwtAuthMW, adminMW)

	// The generic CRUD factory covers everything else uniformly. The seven
	// content kinds list publicly; messages and about keep their bespoke
	// routes registered above instead of the factory's.
	handler.NewResourceHandler[model.Project](model.CollectionProjects, projects,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.TechStack](model.CollectionTechStack, techStack,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Experience](model.CollectionExperience, experience,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Education](model.CollectionEducation, education,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Testimonial](model.CollectionTestimonials, testimonials,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Certificate](model.CollectionCertificates, certificates,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Specialization](model.CollectionSpecializations, specializations,
		handler.ResourceOptions{PublicList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.Message](model.CollectionMessages, messages,
		handler.ResourceOptions{SkipCreate: true}).RegisterRoutes(api, jwtAuthMW, adminMW)
	handler.NewResourceHandler[model.About](model.CollectionAbout, about,
		handler.ResourceOptions{SkipList: true}).RegisterRoutes(api, jwtAuthMW, adminMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
