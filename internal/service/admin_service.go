package service

import (
	"forum/internal/repository"
	"forum/pkg/logger"

	"go.uber.org/zap"
)

// AdminService provides the read-only aggregate views over active
// comments and the archive tables.
type AdminService struct {
	commentRepo *repository.CommentRepository
	archiveRepo *repository.ArchiveRepository
}

func NewAdminService(commentRepo *repository.CommentRepository, archiveRepo *repository.ArchiveRepository) *AdminService {
	return &AdminService{
		commentRepo: commentRepo,
		archiveRepo: archiveRepo,
	}
}

// ListAllComments pages over every active comment regardless of post or
// author.
func (s *AdminService) ListAllComments(page, size int, search string) (PagedResult[CommentDTO], error) {
	comments, total, err := s.commentRepo.ListAllComments(page, size, search)
	if err != nil {
		logger.Log.Error("Failed to list all comments", zap.Error(err))
		return PagedResult[CommentDTO]{}, err
	}

	return newPagedResult(toCommentDTOs(comments), page, size, total), nil
}

// ListDeletedPosts pages over archived posts, most recently deleted first.
func (s *AdminService) ListDeletedPosts(page, size int, search string) (PagedResult[DeletedPostDTO], error) {
	records, total, err := s.archiveRepo.ListDeletedPosts(page, size, search)
	if err != nil {
		logger.Log.Error("Failed to list deleted posts", zap.Error(err))
		return PagedResult[DeletedPostDTO]{}, err
	}

	items := make([]DeletedPostDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toDeletedPostDTO(record))
	}

	return newPagedResult(items, page, size, total), nil
}

// GetDeletedPost returns the full archived post under its original id.
func (s *AdminService) GetDeletedPost(postID uint) (*DeletedPostDetailsDTO, error) {
	record, err := s.archiveRepo.GetDeletedPost(postID)
	if err != nil {
		logger.Log.Error("Failed to fetch deleted post", zap.Uint("post_id", postID), zap.Error(err))
		return nil, err
	}
	if record == nil {
		return nil, ErrPostNotFound
	}

	dto := toDeletedPostDetailsDTO(*record)
	return &dto, nil
}

// ListDeletedComments pages over archived comments, most recently deleted
// first.
func (s *AdminService) ListDeletedComments(page, size int, search string) (PagedResult[DeletedCommentDTO], error) {
	records, total, err := s.archiveRepo.ListDeletedComments(page, size, search)
	if err != nil {
		logger.Log.Error("Failed to list deleted comments", zap.Error(err))
		return PagedResult[DeletedCommentDTO]{}, err
	}

	items := make([]DeletedCommentDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toDeletedCommentDTO(record))
	}

	return newPagedResult(items, page, size, total), nil
}
