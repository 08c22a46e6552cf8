package handler

import (
	"net/http"

	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

type PostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=2000"`
}

// List returns a page of all posts, newest first.
// GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	page, size, search := paging(c, postPageSize, postPageSizeMax)

	result, err := h.postService.ListPosts(page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMine returns a page of the caller's posts.
// GET /api/posts/my
func (h *PostHandler) ListMine(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	page, size, search := paging(c, postPageSize, postPageSizeMax)

	result, err := h.postService.ListMyPosts(act, page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get returns one post with content and author name.
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create stamps a new post with the caller's identity and today's date.
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(act, req.Title, req.Content)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update rewrites title and content. Author only.
// PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.postService.UpdatePost(act, id, req.Title, req.Content); err != nil {
		serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete archives the post and all of its comments. Author or admin.
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(act, id); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post and associated comments moved to deleted items successfully.",
	})
}
