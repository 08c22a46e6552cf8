package repository

import (
	"errors"
	"strings"
	"time"

	"forum/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author, or nil when absent.
func (r *PostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostWithComments loads the post and every comment under it. Used by
// the archive-on-delete path, which needs the full comment set.
func (r *PostRepository) GetPostWithComments(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Comments").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) PostExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListPosts returns one page of posts, newest first, plus the total count
// for the filter. userID narrows the listing to a single author; search
// matches title or content, case-insensitively.
func (r *PostRepository) ListPosts(page, size int, search string, userID *uuid.UUID) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).Preload("User")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Order("created_date DESC").
		Order("id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts).Error

	return posts, total, err
}

// UpdatePostContent rewrites title and content, leaving the creation date
// alone. Returns the number of rows hit so the caller can detect a row
// that vanished between read and write.
func (r *PostRepository) UpdatePostContent(id uint, title, content string) (int64, error) {
	res := r.db.Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	return res.RowsAffected, res.Error
}

// ArchivePost moves a post and all of its comments into the archive tables
// in one transaction. The active and archive tables are mutually exclusive
// for a given id: either everything moves, or nothing does.
func (r *PostRepository) ArchivePost(post *models.Post, deletedDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(post.Comments) > 0 {
			archived := make([]models.DeletedComment, 0, len(post.Comments))
			for _, comment := range post.Comments {
				archived = append(archived, models.DeletedComment{
					CommentID:   comment.ID,
					PostID:      &comment.PostID,
					UserID:      &comment.UserID,
					Content:     comment.Content,
					CreatedDate: &comment.CreatedDate,
					DeletedDate: deletedDate,
				})
			}
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		deletedPost := models.DeletedPost{
			PostID:      post.ID,
			Title:       post.Title,
			Content:     post.Content,
			UserID:      &post.UserID,
			CreatedDate: &post.CreatedDate,
			DeletedDate: deletedDate,
		}
		if err := tx.Create(&deletedPost).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, post.ID).Error
	})
}
