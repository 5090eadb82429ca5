package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/internal/middleware"
	"github.com/venomous-dashboard/notes-service/internal/service"
)

// MemoHandler handles memo API endpoints
type MemoHandler struct {
	svc service.MemoService
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(svc service.MemoService) *MemoHandler {
	return &MemoHandler{svc: svc}
}

// List handles GET /memos
func (h *MemoHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	memos, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, memos)
}

// Get handles GET /memos/:id
func (h *MemoHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	memo, err := h.svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, memo)
}

// Create handles POST /memos
func (h *MemoHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	memo, err := h.svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Created(c, memo)
}

// Update handles PUT /memos/:id
func (h *MemoHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	var req domain.UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, common.ErrInvalidInput)
		return
	}

	memo, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.Success(c, memo)
}

// Delete handles DELETE /memos/:id
func (h *MemoHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.Error(c, common.ErrUnauthorized)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		common.Fail(c, err)
		return
	}
	common.DeleteSuccess(c)
}
