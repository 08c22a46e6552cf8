package service

import (
	"forum/internal/audit"
	"forum/internal/events"
	"forum/internal/models"
	"forum/internal/repository"
	"forum/pkg/logger"

	"go.uber.org/zap"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	broker      events.Broker
	auditLog    *audit.Logger
}

func NewCommentService(commentRepo *repository.CommentRepository, postRepo *repository.PostRepository, broker events.Broker, auditLog *audit.Logger) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		broker:      broker,
		auditLog:    auditLog,
	}
}

// ListCommentsForPost returns one page of a post's comments in
// conversation order. A missing post yields an empty page rather than an
// error.
func (s *CommentService) ListCommentsForPost(postID uint, page, size int, search string) (PagedResult[CommentDTO], error) {
	exists, err := s.postRepo.PostExists(postID)
	if err != nil {
		return PagedResult[CommentDTO]{}, err
	}
	if !exists {
		return newPagedResult([]CommentDTO{}, page, size, 0), nil
	}

	comments, total, err := s.commentRepo.ListCommentsForPost(postID, page, size, search)
	if err != nil {
		logger.Log.Error("Failed to list comments", zap.Uint("post_id", postID), zap.Error(err))
		return PagedResult[CommentDTO]{}, err
	}

	return newPagedResult(toCommentDTOs(comments), page, size, total), nil
}

// ListMyComments returns one page of the actor's comments, newest first.
func (s *CommentService) ListMyComments(actor Actor, page, size int, search string) (PagedResult[CommentDTO], error) {
	comments, total, err := s.commentRepo.ListCommentsByUser(actor.ID, page, size, search)
	if err != nil {
		logger.Log.Error("Failed to list user comments",
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return PagedResult[CommentDTO]{}, err
	}

	return newPagedResult(toCommentDTOs(comments), page, size, total), nil
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(actor Actor, postID uint, content string) (*CommentDTO, error) {
	exists, err := s.postRepo.PostExists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		PostID:      postID,
		UserID:      actor.ID,
		Content:     content,
		CreatedDate: today(),
	}

	if err := s.commentRepo.CreateComment(comment); err != nil {
		logger.Log.Error("Failed to create comment",
			zap.Uint("post_id", postID),
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.publish(events.Event{
		Type:      events.TypeCommentCreated,
		PostID:    postID,
		CommentID: comment.ID,
		Actor:     actor.Username,
		Timestamp: comment.CreatedDate,
	})

	created, err := s.commentRepo.GetCommentByID(comment.ID)
	if err != nil || created == nil {
		// The row was just written; fall back to the local copy with the
		// actor's name.
		dto := toCommentDTO(*comment)
		dto.AuthorName = actor.Username
		return &dto, nil
	}

	dto := toCommentDTO(*created)
	return &dto, nil
}

// UpdateComment rewrites content. Author only.
func (s *CommentService) UpdateComment(actor Actor, id uint, content string) error {
	comment, err := s.commentRepo.GetCommentByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !actor.IsAuthor(comment.UserID) {
		return ErrForbidden
	}

	affected, err := s.commentRepo.UpdateCommentContent(id, content)
	if err != nil {
		logger.Log.Error("Failed to update comment", zap.Uint("comment_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		exists, err := s.commentRepo.CommentExists(id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCommentNotFound
		}
		return ErrConcurrentUpdate
	}

	return nil
}

// DeleteComment archives a single comment. Author or admin.
func (s *CommentService) DeleteComment(actor Actor, id uint) error {
	comment, err := s.commentRepo.GetCommentByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !actor.CanModerate(comment.UserID) {
		return ErrForbidden
	}

	deletedDate := today()
	if err := s.commentRepo.ArchiveComment(comment, deletedDate); err != nil {
		logger.Log.Error("Archive transaction failed",
			zap.Uint("comment_id", id),
			zap.String("actor_id", actor.ID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Comment archived",
		zap.Uint("comment_id", id),
		zap.String("actor_id", actor.ID.String()),
		zap.String("actor_role", string(actor.Role)),
	)

	s.writeAudit(audit.Entry{
		Action:    events.TypeCommentArchived,
		ActorID:   actor.ID.String(),
		ActorRole: string(actor.Role),
		TargetID:  id,
		PostID:    comment.PostID,
		Timestamp: deletedDate,
	})
	s.publish(events.Event{
		Type:      events.TypeCommentArchived,
		PostID:    comment.PostID,
		CommentID: id,
		Actor:     actor.Username,
		Timestamp: deletedDate,
	})

	return nil
}

func (s *CommentService) publish(event events.Event) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(event); err != nil {
		logger.Log.Warn("Failed to publish event",
			zap.String("type", event.Type),
			zap.Error(err),
		)
	}
}

func (s *CommentService) writeAudit(entry audit.Entry) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Write(entry); err != nil {
		logger.Log.Warn("Failed to write audit entry",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}

func toCommentDTOs(comments []models.Comment) []CommentDTO {
	items := make([]CommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, toCommentDTO(comment))
	}
	return items
}
