package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/internal/middleware"
	"github.com/venomous-dashboard/notes-service/internal/service"
)

// ChapterHandler handles article chapter API endpoints. Chapters are
// always addressed through their parent article.
type ChapterHandler struct {
	svc service.ChapterService
}

// NewChapterHandler creates a new ChapterHandler
func NewChapterHandler(svc service.ChapterService) *ChapterHandler {
	return &ChapterHandler{svc: svc}
}

// Get handles GET /articles/:articleId/chapters/:chapterId
func (h *ChapterHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	chapter, err := h.svc.Get(c.Request.Context(), userID, c.Param("articleId"), c.Param("chapterId"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, chapter)
}

// Create handles POST /articles/:articleId/chapters
func (h *ChapterHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	chapter, err := h.svc.Create(c.Request.Context(), userID, c.Param("articleId"), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Created(c, chapter)
}

// Update handles PUT /articles/:articleId/chapters/:chapterId
func (h *ChapterHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	chapter, err := h.svc.Update(c.Request.Context(), userID, c.Param("articleId"), c.Param("chapterId"), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, chapter)
}

// Delete handles DELETE /articles/:articleId/chapters/:chapterId
func (h *ChapterHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("articleId"), c.Param("chapterId")); err != nil {
		common.Fail(c, err)
		return
	}
	common.DeleteSuccess(c)
}
