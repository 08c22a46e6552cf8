package handler

import (
	"net/http"

	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the read-only aggregate views. All routes sit
// behind the Admin role guard; post deletion is shared with PostHandler.
type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListAllComments pages over every active comment.
// GET /api/admin/comments
func (h *AdminHandler) ListAllComments(c *gin.Context) {
	page, size, search := paging(c, commentPageSize, commentPageSizeMax)

	result, err := h.adminService.ListAllComments(page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListDeletedPosts pages over archived posts.
// GET /api/admin/deleted/posts
func (h *AdminHandler) ListDeletedPosts(c *gin.Context) {
	page, size, search := paging(c, postPageSize, postPageSizeMax)

	result, err := h.adminService.ListDeletedPosts(page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDeletedPost returns one archived post under its original id.
// GET /api/admin/deleted/posts/:id
func (h *AdminHandler) GetDeletedPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.adminService.GetDeletedPost(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListDeletedComments pages over archived comments.
// GET /api/admin/deleted/comments
func (h *AdminHandler) ListDeletedComments(c *gin.Context) {
	page, size, search := paging(c, commentPageSize, commentPageSizeMax)

	result, err := h.adminService.ListDeletedComments(page, size, search)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
