package handler

import (
	"net/http"

	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// ListForPost returns a page of a post's comments in conversation order.
// GET /api/posts/:id/comments
func (h *CommentHandler) ListForPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, size, search := paging(c, commentPageSize, commentPageSizeMax)

	result, err := h.commentService.ListCommentsForPost(postID, page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMine returns a page of the caller's comments, newest first.
// GET /api/comments/my
func (h *CommentHandler) ListMine(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	page, size, search := paging(c, commentPageSize, commentPageSizeMax)

	result, err := h.commentService.ListMyComments(act, page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create attaches a comment to an existing post.
// POST /api/posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := h.commentService.CreateComment(act, postID, req.Content)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Update rewrites a comment's content. Author only.
// PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.commentService.UpdateComment(act, id, req.Content); err != nil {
		serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete archives a single comment. Author or admin.
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(act, id); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment moved to deleted items successfully.",
	})
}
