package workflow

import (
	"errors"

	"gorm.io/gorm"

	"github.com/daryakozlova/postboard/internal/models"
	"github.com/daryakozlova/postboard/internal/store"
)

var (
	// ErrAlreadyUpvoted indicates the user's active vote is already an upvote
	ErrAlreadyUpvoted = errors.New("already upvoted")

	// ErrAlreadyDownvoted indicates the user's active vote is already a downvote
	ErrAlreadyDownvoted = errors.New("already downvoted")

	// ErrNoVote indicates there is no vote to cancel
	ErrNoVote = errors.New("no vote to cancel")
)

// Voting runs the per-(user, post) vote state machine. Every transition
// executes inside one transaction, so a flip replaces the old row
// atomically and a concurrent duplicate insert fails on the unique index
// instead of leaving two rows.
type Voting struct {
	db *gorm.DB
}

func NewVoting(db *gorm.DB) *Voting {
	return &Voting{db: db}
}

func (w *Voting) Upvote(postID, userID int) error {
	return w.vote(postID, userID, models.Upvote)
}

func (w *Voting) Downvote(postID, userID int) error {
	return w.vote(postID, userID, models.Downvote)
}

func (w *Voting) vote(postID, userID int, direction models.VoteType) error {
	return w.db.Transaction(func(tx *gorm.DB) error {
		posts := store.NewPostStore(tx)
		votes := store.NewVoteStore(tx)

		if _, err := posts.Get(postID); err != nil {
			return err
		}

		existing, err := votes.UserPostVote(postID, userID)
		if errors.Is(err, store.ErrVoteNotFound) {
			return translateDuplicate(votes.Create(userID, postID, direction), direction)
		}
		if err != nil {
			return err
		}

		if existing.Type == direction {
			return sameDirection(direction)
		}

		// Flip: the old vote is destroyed and recreated, never updated
		// in place.
		if err := votes.CancelUserVote(postID, userID); err != nil {
			return err
		}
		return translateDuplicate(votes.Create(userID, postID, direction), direction)
	})
}

// Cancel removes the user's vote. Failing when no vote exists keeps the
// second of two back-to-back cancels observable as an error.
func (w *Voting) Cancel(postID, userID int) error {
	return w.db.Transaction(func(tx *gorm.DB) error {
		posts := store.NewPostStore(tx)
		votes := store.NewVoteStore(tx)

		if _, err := posts.Get(postID); err != nil {
			return err
		}

		if _, err := votes.UserPostVote(postID, userID); err != nil {
			if errors.Is(err, store.ErrVoteNotFound) {
				return ErrNoVote
			}
			return err
		}

		return votes.CancelUserVote(postID, userID)
	})
}

func sameDirection(direction models.VoteType) error {
	if direction == models.Upvote {
		return ErrAlreadyUpvoted
	}
	return ErrAlreadyDownvoted
}

// translateDuplicate maps a unique-index rejection onto the
// same-direction error: the race loser behaves exactly like a user who
// voted twice.
func translateDuplicate(err error, direction models.VoteType) error {
	if errors.Is(err, store.ErrDuplicateVote) {
		return sameDirection(direction)
	}
	return err
}
