package models

import "time"

type Post struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Body     string    `gorm:"not null" json:"body"`
	AuthorID int       `json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"-"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}

type CreatePostRequest struct {
	Body string `json:"body" binding:"required"`
}

// GetPost is the read-side projection of a post: stored columns plus
// rating and total vote count derived from the votes table.
type GetPost struct {
	Body        string    `json:"body"`
	Created     time.Time `json:"created"`
	AuthorID    int       `json:"author_id"`
	VotesAmount int       `json:"votes_amount"`
	Rating      int       `json:"rating"`
}
