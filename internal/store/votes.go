package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/daryakozlova/postboard/internal/models"
)

var (
	// ErrVoteNotFound indicates the user has no vote on the post
	ErrVoteNotFound = errors.New("vote not found")

	// ErrDuplicateVote indicates the user already has a vote on the post
	ErrDuplicateVote = errors.New("vote already exists")
)

// VoteStore persists votes. It performs no uniqueness checks of its own;
// the composite unique index on (user_id, post_id) is the single
// authority on vote multiplicity.
type VoteStore struct {
	db *gorm.DB
}

func NewVoteStore(db *gorm.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Create inserts a vote row. A second vote by the same user on the same
// post trips the unique index and comes back as ErrDuplicateVote, even
// when two requests race past the existence check.
func (s *VoteStore) Create(userID, postID int, voteType models.VoteType) error {
	vote := models.Vote{
		UserID: userID,
		PostID: postID,
		Type:   voteType,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

// UserPostVote returns the user's vote on the post, or ErrVoteNotFound.
func (s *VoteStore) UserPostVote(postID, userID int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

// PostVotes returns all votes cast on a post, unordered.
func (s *VoteStore) PostVotes(postID int) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("post_id = ?", postID).Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// CancelUserVote deletes the user's vote on the post. Deleting a vote
// that does not exist is a no-op.
func (s *VoteStore) CancelUserVote(postID, userID int) error {
	return s.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Vote{}).Error
}

// PostRating computes upvotes minus downvotes for a single post.
func (s *VoteStore) PostRating(postID int) (int, error) {
	var up, down int64
	if err := s.db.Model(&models.Vote{}).
		Where("post_id = ? AND type = ?", postID, models.Upvote).
		Count(&up).Error; err != nil {
		return 0, err
	}
	if err := s.db.Model(&models.Vote{}).
		Where("post_id = ? AND type = ?", postID, models.Downvote).
		Count(&down).Error; err != nil {
		return 0, err
	}
	return int(up - down), nil
}
