package service

import (
	"forum/internal/audit"
	"forum/internal/events"
	"forum/internal/models"
	"forum/internal/repository"
	"forum/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	postRepo *repository.PostRepository
	broker   events.Broker
	auditLog *audit.Logger
}

// NewPostService wires the post operations. auditLog may be nil; event
// publishing and audit writes are best-effort and never fail a request.
func NewPostService(postRepo *repository.PostRepository, broker events.Broker, auditLog *audit.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		broker:   broker,
		auditLog: auditLog,
	}
}

// ListPosts returns one page of all posts, newest first.
func (s *PostService) ListPosts(page, size int, search string) (PagedResult[PostDTO], error) {
	return s.listPosts(page, size, search, nil)
}

// ListMyPosts returns one page of the actor's own posts.
func (s *PostService) ListMyPosts(actor Actor, page, size int, search string) (PagedResult[PostDTO], error) {
	return s.listPosts(page, size, search, &actor.ID)
}

func (s *PostService) listPosts(page, size int, search string, userID *uuid.UUID) (PagedResult[PostDTO], error) {
	posts, total, err := s.postRepo.ListPosts(page, size, search, userID)
	if err != nil {
		logger.Log.Error("Failed to list posts", zap.Error(err))
		return PagedResult[PostDTO]{}, err
	}

	items := make([]PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostDTO(post))
	}

	return newPagedResult(items, page, size, total), nil
}

func (s *PostService) GetPost(id uint) (*PostDetailsDTO, error) {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch post", zap.Uint("post_id", id), zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	dto := toPostDetailsDTO(*post)
	return &dto, nil
}

func (s *PostService) CreatePost(actor Actor, title, content string) (*PostDetailsDTO, error) {
	post := &models.Post{
		Title:       title,
		Content:     content,
		UserID:      actor.ID,
		CreatedDate: today(),
	}

	if err := s.postRepo.CreatePost(post); err != nil {
		logger.Log.Error("Failed to create post",
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.publish(events.Event{
		Type:      events.TypePostCreated,
		PostID:    post.ID,
		Actor:     actor.Username,
		Timestamp: post.CreatedDate,
	})

	return s.GetPost(post.ID)
}

// UpdatePost rewrites title and content. Author only; even admins are
// refused on content they do not own.
func (s *PostService) UpdatePost(actor Actor, id uint, title, content string) error {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !actor.IsAuthor(post.UserID) {
		return ErrForbidden
	}

	affected, err := s.postRepo.UpdatePostContent(id, title, content)
	if err != nil {
		logger.Log.Error("Failed to update post", zap.Uint("post_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		// The row vanished between read and write. Re-check once.
		exists, err := s.postRepo.PostExists(id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPostNotFound
		}
		return ErrConcurrentUpdate
	}

	return nil
}

// DeletePost archives a post together with all of its comments in one
// transaction. Author or admin.
func (s *PostService) DeletePost(actor Actor, id uint) error {
	post, err := s.postRepo.GetPostWithComments(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !actor.CanModerate(post.UserID) {
		return ErrForbidden
	}

	deletedDate := today()
	if err := s.postRepo.ArchivePost(post, deletedDate); err != nil {
		logger.Log.Error("Archive transaction failed",
			zap.Uint("post_id", id),
			zap.String("actor_id", actor.ID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Post archived",
		zap.Uint("post_id", id),
		zap.Int("comments", len(post.Comments)),
		zap.String("actor_id", actor.ID.String()),
		zap.String("actor_role", string(actor.Role)),
	)

	s.writeAudit(audit.Entry{
		Action:    events.TypePostArchived,
		ActorID:   actor.ID.String(),
		ActorRole: string(actor.Role),
		TargetID:  id,
		PostID:    id,
		Timestamp: deletedDate,
	})
	s.publish(events.Event{
		Type:      events.TypePostArchived,
		PostID:    id,
		Actor:     actor.Username,
		Timestamp: deletedDate,
	})

	return nil
}

func (s *PostService) publish(event events.Event) {
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

func (s *PostService) writeAudit(entry audit.Entry) {
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
