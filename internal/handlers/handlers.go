package handlers

import (
	"github.com/daryakozlova/postboard/internal/database"
)

// Handler combines all handler types
type Handler struct {
	Auth *AuthHandler
	Post *PostHandler
	User *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *database.Database) *Handler {
	// Get the GORM DB instance from the service
	dbService := database.New()
	gormDB := dbService.GetDB()

	return &Handler{
		Auth: NewAuthHandler(gormDB),
		Post: NewPostHandler(gormDB),
		User: NewUserHandler(gormDB),
	}
}
