package workflow

import (
	"gorm.io/gorm"

	"github.com/daryakozlova/postboard/internal/models"
	"github.com/daryakozlova/postboard/internal/store"
)

// DefaultFeedAmount bounds a feed when the caller doesn't say how much.
const DefaultFeedAmount = 10

// Listing produces post feeds and single-post views.
type Listing struct {
	posts *store.PostStore
}

func NewListing(db *gorm.DB) *Listing {
	return &Listing{posts: store.NewPostStore(db)}
}

// Post returns the enriched view of one post.
func (w *Listing) Post(id int) (*models.GetPost, error) {
	return w.posts.View(id)
}

// CreatePost persists a post for the author and returns its id.
func (w *Listing) CreatePost(body string, authorID int) (int, error) {
	post, err := w.posts.Create(body, authorID)
	if err != nil {
		return 0, err
	}
	return post.ID, nil
}

// Latest returns the newest posts, most recent first.
func (w *Listing) Latest(amount int) ([]models.GetPost, error) {
	return w.posts.Latest(clampAmount(amount))
}

// Best returns the highest-rated posts first.
func (w *Listing) Best(amount int) ([]models.GetPost, error) {
	return w.posts.Best(clampAmount(amount))
}

func clampAmount(amount int) int {
	if amount <= 0 {
		return DefaultFeedAmount
	}
	return amount
}
