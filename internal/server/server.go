package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/daryakozlova/postboard/internal/database"
	"github.com/daryakozlova/postboard/internal/handlers"
	"github.com/daryakozlova/postboard/internal/middleware"
)

type Server struct {
	db      *database.Database
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Create unified handler
	handler := handlers.NewHandler(db)

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, database.New().Health())
	})

	// Auth routes (public)
	r.POST("/register", s.handler.Auth.Register)
	r.POST("/login", s.handler.Auth.Login)

	// Post routes (public reads)
	r.GET("/post/:post_id", s.handler.Post.GetPost)
	r.GET("/posts", s.handler.Post.GetPosts)

	// User routes (public reads)
	r.GET("/users/:id", s.handler.User.GetUserProfile)

	// Protected routes (authentication required)
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", s.handler.Auth.GetMe)

		protected.POST("/post", s.handler.Post.CreatePost)
		protected.POST("/post/:post_id/upvote", s.handler.Post.UpvotePost)
		protected.POST("/post/:post_id/downvote", s.handler.Post.DownvotePost)
		protected.POST("/post/:post_id/cancel-vote", s.handler.Post.CancelVote)
	}

	return r
}
