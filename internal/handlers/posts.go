package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daryakozlova/postboard/internal/models"
	"github.com/daryakozlova/postboard/internal/store"
	"github.com/daryakozlova/postboard/internal/workflow"
)

type PostHandler struct {
	voting  *workflow.Voting
	listing *workflow.Listing
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{
		voting:  workflow.NewVoting(db),
		listing: workflow.NewListing(db),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetPost returns a single post enriched with its rating and vote count
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	view, err := h.listing.Post(postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPosts returns a feed sorted by recency or by rating
func (h *PostHandler) GetPosts(c *gin.Context) {
	amount := workflow.DefaultFeedAmount
	if raw := c.Query("amount"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			amount = parsed
		}
	}

	var (
		views []models.GetPost
		err   error
	)
	switch c.Query("sorting") {
	case "latest":
		views, err = h.listing.Latest(amount)
	case "best":
		views, err = h.listing.Best(amount)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sorting must be 'latest' or 'best'"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreatePost creates a new post (PROTECTED - requires authentication)
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is required"})
		return
	}

	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := h.listing.CreatePost(input.Body, authorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, postID)
}

// UpvotePost records an upvote (PROTECTED - requires authentication)
func (h *PostHandler) UpvotePost(c *gin.Context) {
	h.vote(c, h.voting.Upvote)
}

// DownvotePost records a downvote (PROTECTED - requires authentication)
func (h *PostHandler) DownvotePost(c *gin.Context) {
	h.vote(c, h.voting.Downvote)
}

// CancelVote removes the caller's vote (PROTECTED - requires authentication)
func (h *PostHandler) CancelVote(c *gin.Context) {
	h.vote(c, h.voting.Cancel)
}

func (h *PostHandler) vote(c *gin.Context, transition func(postID, userID int) error) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := transition(postID, userID); err != nil {
		status, message := voteError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func voteError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound, "Post not found"
	case errors.Is(err, workflow.ErrAlreadyUpvoted):
		return http.StatusBadRequest, "You already upvoted this post"
	case errors.Is(err, workflow.ErrAlreadyDownvoted):
		return http.StatusBadRequest, "You already downvoted this post"
	case errors.Is(err, workflow.ErrNoVote):
		return http.StatusBadRequest, "You didn't vote for this post"
	default:
		return http.StatusInternalServerError, "Failed to process vote"
	}
}
