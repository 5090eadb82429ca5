package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/internal/middleware"
	"github.com/venomous-dashboard/notes-service/internal/service"
)

// ArticleHandler handles article API endpoints
type ArticleHandler struct {
	svc service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	articles, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, articles)
}

// Get handles GET /articles/:id (article with ordered chapters)
func (h *ArticleHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), userID, c.Param("articleId"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, detail)
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	article, err := h.svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Created(c, article)
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	article, err := h.svc.Update(c.Request.Context(), userID, c.Param("articleId"), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, article)
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("articleId")); err != nil {
		common.Fail(c, err)
		return
	}
	common.DeleteSuccess(c)
}
