package models

// VoteType is the direction of a vote. The two values are mutually
// exclusive per (user, post).
type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)

// Vote model - tracks individual user votes on posts. The composite
// unique index makes a second vote by the same user on the same post
// unrepresentable, so duplicate-vote races fail at the database.
type Vote struct {
	ID     int      `gorm:"primaryKey" json:"id"`
	UserID int      `gorm:"uniqueIndex:idx_votes_user_post" json:"user_id"`
	PostID int      `gorm:"uniqueIndex:idx_votes_user_post" json:"post_id"`
	Type   VoteType `gorm:"type:varchar(16);not null" json:"type"`
}
