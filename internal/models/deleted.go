package models

import (
	"time"

	"github.com/google/uuid"
)

// DeletedPost mirrors an archived post under its original id. Author and
// creation metadata are nullable so the audit row survives the referenced
// user disappearing.
type DeletedPost struct {
	PostID      uint       `gorm:"primaryKey"`
	Title       string     `gorm:"type:varchar(100)"`
	Content     string     `gorm:"type:varchar(2000)"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	CreatedDate *time.Time `gorm:"type:date"`
	DeletedDate time.Time  `gorm:"type:date;not null"`
}

// DeletedComment mirrors an archived comment under its original id.
type DeletedComment struct {
	CommentID   uint       `gorm:"primaryKey"`
	PostID      *uint      `gorm:"index"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Content     string     `gorm:"type:varchar(2000)"`
	CreatedDate *time.Time `gorm:"type:date"`
	DeletedDate time.Time  `gorm:"type:date;not null"`
}
