package repository

import (
	"errors"
	"strings"
	"time"

	"forum/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArchiveRepository reads the deleted-item tables. Author rows may have
// been removed after archiving, so every query left-joins users and
// carries the resolved name alongside the archived row.
type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// DeletedPostRecord is a deleted_posts row joined with its author's
// username, when the author still exists.
type DeletedPostRecord struct {
	PostID      uint
	Title       string
	Content     string
	UserID      *uuid.UUID
	CreatedDate *time.Time
	DeletedDate time.Time
	AuthorName  *string
}

// DeletedCommentRecord is a deleted_comments row joined with its author's
// username.
type DeletedCommentRecord struct {
	CommentID   uint
	PostID      *uint
	UserID      *uuid.UUID
	Content     string
	CreatedDate *time.Time
	DeletedDate time.Time
	AuthorName  *string
}

// ListDeletedPosts returns one page of archived posts, most recently
// deleted first.
func (r *ArchiveRepository) ListDeletedPosts(page, size int, search string) ([]DeletedPostRecord, int64, error) {
	query := r.db.Model(&models.DeletedPost{}).
		Joins("LEFT JOIN users ON users.id = deleted_posts.user_id")

	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(deleted_posts.title) LIKE ? OR LOWER(deleted_posts.content) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []DeletedPostRecord
	err := query.
		Select("deleted_posts.*, users.username AS author_name").
		Order("deleted_posts.deleted_date DESC").
		Order("deleted_posts.post_id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&records).Error

	return records, total, err
}

// GetDeletedPost returns one archived post by its original id, or nil.
func (r *ArchiveRepository) GetDeletedPost(postID uint) (*DeletedPostRecord, error) {
	var record DeletedPostRecord
	err := r.db.Model(&models.DeletedPost{}).
		Select("deleted_posts.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = deleted_posts.user_id").
		Where("deleted_posts.post_id = ?", postID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListDeletedComments returns one page of archived comments, most
// recently deleted first.
func (r *ArchiveRepository) ListDeletedComments(page, size int, search string) ([]DeletedCommentRecord, int64, error) {
	query := r.db.Model(&models.DeletedComment{}).
		Joins("LEFT JOIN users ON users.id = deleted_comments.user_id")

	if term := strings.TrimSpace(search); term != "" {
		query = query.Where("LOWER(deleted_comments.content) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []DeletedCommentRecord
	err := query.
		Select("deleted_comments.*, users.username AS author_name").
		Order("deleted_comments.deleted_date DESC").
		Order("deleted_comments.comment_id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&records).Error

	return records, total, err
}
