package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(100)"`
	Content     string    `gorm:"type:varchar(2000)"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedDate time.Time `gorm:"type:date;not null"`

	// Author may be absent when the user row was removed out of band;
	// listings substitute a placeholder name instead of failing.
	User     *User     `gorm:"foreignKey:UserID"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	PostID      uint      `gorm:"not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:varchar(2000)"`
	CreatedDate time.Time `gorm:"type:date;not null"`

	User *User `gorm:"foreignKey:UserID"`
}
