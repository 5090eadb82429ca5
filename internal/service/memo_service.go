package service

import (
	"context"
	"strings"
	"time"

	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/internal/repository"
	"github.com/venomous-dashboard/notes-service/pkg/cache"
	"github.com/venomous-dashboard/notes-service/pkg/logger"
)

// MemoService business logic for memos: read-through caching on the
// read path, write-then-invalidate on the write path.
type MemoService interface {
	List(ctx context.Context, userID string) ([]*domain.MemoResponse, error)
	Get(ctx context.Context, userID, id string) (*domain.MemoResponse, error)
	Create(ctx context.Context, userID string, req *domain.CreateMemoRequest) (*domain.MemoResponse, error)
	Update(ctx context.Context, userID, id string, req *domain.UpdateMemoRequest) (*domain.MemoResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type memoService struct {
	cacheHelper
	repo repository.MemoRepository
}

// NewMemoService creates a new MemoService
func NewMemoService(repo repository.MemoRepository, cacheService cache.Service) MemoService {
	return &memoService{cacheHelper: cacheHelper{cache: cacheService}, repo: repo}
}

// List retrieves a user's memos, pinned first then most recently
// updated. Cached values keep the storage shape; the wire transform is
// applied on every read.
func (s *memoService) List(ctx context.Context, userID string) ([]*domain.MemoResponse, error) {
	key := cache.MemoListKey(userID)

	var cached []domain.Memo
	if s.cacheGet(ctx, key, &cached) {
		return memosToResponse(cached), nil
	}

	memos, err := s.repo.ListByUser(userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("user_id", userID).Msg("failed to list memos")
		return nil, common.ErrDatabase
	}

	s.cacheSet(ctx, key, memos, cache.TTLMemoList)

	return memosToResponse(memos), nil
}

// Get retrieves a single memo. A detail cache hit is only honored when
// the cached row belongs to the requester; otherwise the lookup falls
// through to storage, which reports not-found.
func (s *memoService) Get(ctx context.Context, userID, id string) (*domain.MemoResponse, error) {
	key := cache.MemoKey(id)

	var cached domain.Memo
	if s.cacheGet(ctx, key, &cached) && cached.UserID == userID {
		return cached.ToResponse(), nil
	}

	memo, err := s.repo.FindByID(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("memo_id", id).Msg("failed to find memo")
		return nil, common.ErrDatabase
	}
	if memo == nil {
		// Negative results are never cached
		return nil, common.ErrMemoNotFound
	}

	s.cacheSet(ctx, key, memo, cache.TTLMemoDetail)

	return memo.ToResponse(), nil
}

// Create validates and inserts a memo, then invalidates the user's list
// cache. No detail key exists yet, so only the list is touched.
func (s *memoService) Create(ctx context.Context, userID string, req *domain.CreateMemoRequest) (*domain.MemoResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, common.ErrContentRequired
	}

	color := domain.MemoColorYellow
	if req.Color != nil {
		color = *req.Color
	}
	isPinned := false
	if req.IsPinned != nil {
		isPinned = *req.IsPinned
	}

	memo := &domain.Memo{
		UserID:   userID,
		Content:  content,
		Color:    domain.MemoColorToToken(color),
		IsPinned: isPinned,
	}
	if err := s.repo.Create(memo); err != nil {
		logger.Get().Error().Err(err).Str("user_id", userID).Msg("failed to create memo")
		return nil, common.ErrDatabase
	}

	s.cacheDelete(ctx, cache.MemoListKey(userID))

	return memo.ToResponse(), nil
}

// Update applies a sparse field set to an owned memo, then invalidates
// both the list and the detail cache keys.
func (s *memoService) Update(ctx context.Context, userID, id string, req *domain.UpdateMemoRequest) (*domain.MemoResponse, error) {
	existing, err := s.repo.FindByID(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("memo_id", id).Msg("failed to find memo")
		return nil, common.ErrDatabase
	}
	if existing == nil {
		return nil, common.ErrMemoNotFound
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, common.ErrContentRequired
		}
		updates["content"] = content
	}
	if req.Color != nil {
		updates["color"] = domain.MemoColorToToken(*req.Color)
	}
	if req.IsPinned != nil {
		updates["is_pinned"] = *req.IsPinned
	}
	if len(updates) == 0 {
		return nil, common.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now().UTC()

	memo, err := s.repo.Update(id, userID, updates)
	if err != nil {
		logger.Get().Error().Err(err).Str("memo_id", id).Msg("failed to update memo")
		return nil, common.ErrDatabase
	}
	if memo == nil {
		return nil, common.ErrMemoNotFound
	}

	s.cacheDelete(ctx, cache.MemoListKey(userID), cache.MemoKey(id))

	return memo.ToResponse(), nil
}

// Delete soft-deletes an owned memo. A second delete of the same memo
// reports not-found.
func (s *memoService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.repo.SoftDelete(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("memo_id", id).Msg("failed to delete memo")
		return common.ErrDatabase
	}
	if !deleted {
		return common.ErrMemoNotFound
	}

	s.cacheDelete(ctx, cache.MemoListKey(userID), cache.MemoKey(id))

	return nil
}

func memosToResponse(memos []domain.Memo) []*domain.MemoResponse {
	responses := make([]*domain.MemoResponse, len(memos))
	for i := range memos {
		responses[i] = memos[i].ToResponse()
	}
	return responses
}
