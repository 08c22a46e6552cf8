package service

import (
	"time"

	"forum/internal/models"
	"forum/internal/repository"

	"github.com/google/uuid"
)

// Placeholder author names. Active content tolerates a missing author row;
// archived content additionally tolerates authors removed after archiving.
const (
	unknownAuthor = "Unknown"
	deletedAuthor = "User Deleted or Unknown"
)

type PostDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	AuthorName  string    `json:"authorName"`
	CreatedDate time.Time `json:"createdDate"`
}

type PostDetailsDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    uuid.UUID `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	CreatedDate time.Time `json:"createdDate"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	Content     string    `json:"content"`
	AuthorID    uuid.UUID `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	CreatedDate time.Time `json:"createdDate"`
	PostID      uint      `json:"postId"`
}

type DeletedPostDTO struct {
	PostID      uint      `json:"postId"`
	Title       string    `json:"title"`
	AuthorName  string    `json:"authorName"`
	DeletedDate time.Time `json:"deletedDate"`
}

type DeletedPostDetailsDTO struct {
	PostID      uint       `json:"postId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    *uuid.UUID `json:"authorId"`
	AuthorName  string     `json:"authorName"`
	CreatedDate *time.Time `json:"createdDate"`
	DeletedDate time.Time  `json:"deletedDate"`
}

type DeletedCommentDTO struct {
	CommentID   uint       `json:"commentId"`
	Content     string     `json:"content"`
	AuthorID    *uuid.UUID `json:"authorId"`
	AuthorName  string     `json:"authorName"`
	CreatedDate *time.Time `json:"createdDate"`
	DeletedDate time.Time  `json:"deletedDate"`
	PostID      *uint      `json:"postId"`
}

type UserDTO struct {
	ID       uuid.UUID       `json:"id"`
	Username string          `json:"username"`
	Role     models.RoleName `json:"role"`
}

type TokenDTO struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        UserDTO   `json:"user"`
}

func authorName(user *models.User) string {
	if user == nil {
		return unknownAuthor
	}
	return user.Username
}

func archivedAuthorName(name *string) string {
	if name == nil {
		return deletedAuthor
	}
	return *name
}

func toPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		AuthorName:  authorName(post.User),
		CreatedDate: post.CreatedDate,
	}
}

func toPostDetailsDTO(post models.Post) PostDetailsDTO {
	return PostDetailsDTO{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		AuthorID:    post.UserID,
		AuthorName:  authorName(post.User),
		CreatedDate: post.CreatedDate,
	}
}

func toCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:          comment.ID,
		Content:     comment.Content,
		AuthorID:    comment.UserID,
		AuthorName:  authorName(comment.User),
		CreatedDate: comment.CreatedDate,
		PostID:      comment.PostID,
	}
}

func toDeletedPostDTO(record repository.DeletedPostRecord) DeletedPostDTO {
	return DeletedPostDTO{
		PostID:      record.PostID,
		Title:       record.Title,
		AuthorName:  archivedAuthorName(record.AuthorName),
		DeletedDate: record.DeletedDate,
	}
}

func toDeletedPostDetailsDTO(record repository.DeletedPostRecord) DeletedPostDetailsDTO {
	return DeletedPostDetailsDTO{
		PostID:      record.PostID,
		Title:       record.Title,
		Content:     record.Content,
		AuthorID:    record.UserID,
		AuthorName:  archivedAuthorName(record.AuthorName),
		CreatedDate: record.CreatedDate,
		DeletedDate: record.DeletedDate,
	}
}

func toDeletedCommentDTO(record repository.DeletedCommentRecord) DeletedCommentDTO {
	return DeletedCommentDTO{
		CommentID:   record.CommentID,
		Content:     record.Content,
		AuthorID:    record.UserID,
		AuthorName:  archivedAuthorName(record.AuthorName),
		CreatedDate: record.CreatedDate,
		DeletedDate: record.DeletedDate,
		PostID:      record.PostID,
	}
}
