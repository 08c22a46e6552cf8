package repository

import (
	"errors"
	"strings"
	"time"

	"forum/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) CommentExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListCommentsForPost returns one page of a post's comments in
// conversation order (oldest first).
func (r *CommentRepository) ListCommentsForPost(postID uint, page, size int, search string) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{}).Preload("User").Where("post_id = ?", postID)
	query = applyCommentSearch(query, search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.
		Order("created_date ASC").
		Order("id ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error

	return comments, total, err
}

// ListCommentsByUser returns one page of a user's comments, newest first.
func (r *CommentRepository) ListCommentsByUser(userID uuid.UUID, page, size int, search string) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{}).Preload("User").Where("user_id = ?", userID)
	query = applyCommentSearch(query, search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.
		Order("created_date DESC").
		Order("id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error

	return comments, total, err
}

// ListAllComments returns one page over every active comment, newest
// first. Admin aggregate view.
func (r *CommentRepository) ListAllComments(page, size int, search string) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{}).Preload("User")
	query = applyCommentSearch(query, search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.
		Order("created_date DESC").
		Order("id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error

	return comments, total, err
}

func (r *CommentRepository) UpdateCommentContent(id uint, content string) (int64, error) {
	res := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", content)
	return res.RowsAffected, res.Error
}

// ArchiveComment moves a single comment into the archive table in one
// transaction: copy, then delete the original.
func (r *CommentRepository) ArchiveComment(comment *models.Comment, deletedDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		archived := models.DeletedComment{
			CommentID:   comment.ID,
			PostID:      &comment.PostID,
			UserID:      &comment.UserID,
			Content:     comment.Content,
			CreatedDate: &comment.CreatedDate,
			DeletedDate: deletedDate,
		}
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, comment.ID).Error
	})
}

func applyCommentSearch(query *gorm.DB, search string) *gorm.DB {
	if term := strings.TrimSpace(search); term != "" {
		query = query.Where("LOWER(content) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	return query
}
