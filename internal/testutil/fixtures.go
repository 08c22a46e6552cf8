package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"forum/internal/models"
	"forum/internal/utils"
)

// CreateTestUser inserts a user with the given role and returns it with Role preloaded.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, roleID uint) *models.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	if err := db.Preload("Role").First(user, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("Failed to reload test user: %v", err)
	}
	return user
}

// CreateTestPost inserts a post authored by the given user, created on the given date.
func CreateTestPost(t *testing.T, db *gorm.DB, userID uuid.UUID, title, content string, createdDate time.Time) *models.Post {
	post := &models.Post{
		Title:       title,
		Content:     content,
		UserID:      userID,
		CreatedDate: createdDate,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

// CreateTestComment inserts a comment on the given post.
func CreateTestComment(t *testing.T, db *gorm.DB, postID uint, userID uuid.UUID, content string, createdDate time.Time) *models.Comment {
	comment := &models.Comment{
		PostID:      postID,
		UserID:      userID,
		Content:     content,
		CreatedDate: createdDate,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}
