package models

import (
	"time"
)

// Post is a forum post. Posts are append-only: no edit path exists, and only
// admins can delete them. The author email and rank are denormalized at
// creation time so historical content keeps the rank the author held when
// they wrote it, regardless of later rank-ups.
type Post struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	AuthorEmail string    `json:"author_email" gorm:"not null"`
	AuthorRank  string    `json:"author_rank" gorm:"default:'New Hand'"`
	City        string    `json:"city,omitempty"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Comment carries the same author snapshot rules as Post.
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	PostID      string    `json:"post_id" gorm:"not null;index"`
	UserID      string    `json:"user_id" gorm:"not null"`
	AuthorEmail string    `json:"author_email"`
	Text        string    `json:"text" gorm:"not null;type:text"`
	AuthorRank  string    `json:"author_rank" gorm:"default:'New Hand'"`
	Date        time.Time `json:"date" gorm:"autoCreateTime"`
}
