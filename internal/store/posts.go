package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/daryakozlova/postboard/internal/models"
)

// ErrPostNotFound indicates the requested post doesn't exist
var ErrPostNotFound = errors.New("post not found")

// viewColumns projects a post row together with its vote aggregates.
// Both counters come from correlated subqueries so a listing is a single
// round trip however many posts it returns.
const viewColumns = `posts.body, posts.created, posts.author_id,
	(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id) AS votes_amount,
	(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.type = 'upvote')
	- (SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.type = 'downvote') AS rating`

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Get returns the stored post, or ErrPostNotFound.
func (s *PostStore) Get(id int) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a new post and returns it with its assigned id.
func (s *PostStore) Create(body string, authorID int) (*models.Post, error) {
	post := models.Post{
		Body:     body,
		AuthorID: authorID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// View returns the read projection of one post, aggregates included.
func (s *PostStore) View(id int) (*models.GetPost, error) {
	var view models.GetPost
	result := s.db.Model(&models.Post{}).
		Select(viewColumns).
		Where("posts.id = ?", id).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}
	return &view, nil
}

func (s *PostStore) listViews(limit int, order string) ([]models.GetPost, error) {
	views := make([]models.GetPost, 0, limit)
	err := s.db.Model(&models.Post{}).
		Select(viewColumns).
		Order(order).
		Limit(limit).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Latest returns up to limit posts, newest first.
func (s *PostStore) Latest(limit int) ([]models.GetPost, error) {
	return s.listViews(limit, "posts.created DESC, posts.id DESC")
}

// Best returns up to limit posts ordered by rating. Equal ratings fall
// back to newest first so pagination stays stable.
func (s *PostStore) Best(limit int) ([]models.GetPost, error) {
	return s.listViews(limit, "rating DESC, posts.created DESC, posts.id DESC")
}
