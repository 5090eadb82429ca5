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

// ChapterService business logic for article chapters. Chapters have no
// owner field; every operation first resolves the parent article scoped
// by the requesting user against storage, never against the cache. A
// parent that is missing, soft-deleted, or owned by someone else yields
// ARTICLE_NOT_FOUND before the chapter is even looked at.
type ChapterService interface {
	Get(ctx context.Context, userID, articleID, chapterID string) (*domain.ArticleChapter, error)
	Create(ctx context.Context, userID, articleID string, req *domain.CreateChapterRequest) (*domain.ArticleChapter, error)
	Update(ctx context.Context, userID, articleID, chapterID string, req *domain.UpdateChapterRequest) (*domain.ArticleChapter, error)
	Delete(ctx context.Context, userID, articleID, chapterID string) error
}

type chapterService struct {
	cacheHelper
	repo        repository.ChapterRepository
	articleRepo repository.ArticleRepository
}

// NewChapterService creates a new ChapterService
func NewChapterService(repo repository.ChapterRepository, articleRepo repository.ArticleRepository, cacheService cache.Service) ChapterService {
	return &chapterService{
		cacheHelper: cacheHelper{cache: cacheService},
		repo:        repo,
		articleRepo: articleRepo,
	}
}

// requireArticle resolves the ownership chain through the parent article
func (s *chapterService) requireArticle(articleID, userID string) error {
	article, err := s.articleRepo.FindByID(articleID, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", articleID).Msg("failed to find article")
		return common.ErrDatabase
	}
	if article == nil {
		return common.ErrArticleNotFound
	}
	return nil
}

// Get retrieves a single chapter after verifying the parent article
func (s *chapterService) Get(ctx context.Context, userID, articleID, chapterID string) (*domain.ArticleChapter, error) {
	if err := s.requireArticle(articleID, userID); err != nil {
		return nil, err
	}

	key := cache.ChapterKey(chapterID)

	var cached domain.ArticleChapter
	if s.cacheGet(ctx, key, &cached) && cached.ArticleID == articleID {
		return &cached, nil
	}

	chapter, err := s.repo.FindByID(chapterID, articleID)
	if err != nil {
		logger.Get().Error().Err(err).Str("chapter_id", chapterID).Msg("failed to find chapter")
		return nil, common.ErrDatabase
	}
	if chapter == nil {
		return nil, common.ErrChapterNotFound
	}

	s.cacheSet(ctx, key, chapter, cache.TTLChapterDetail)

	return chapter, nil
}

// Create validates and inserts a chapter, then invalidates the parent
// article's detail entry (chapters are nested there) and the owner's
// article list (it carries chapter counts).
func (s *chapterService) Create(ctx context.Context, userID, articleID string, req *domain.CreateChapterRequest) (*domain.ArticleChapter, error) {
	if err := s.requireArticle(articleID, userID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, common.ErrTitleRequired
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, common.ErrContentRequired
	}
	if req.ChapterNumber < 1 {
		return nil, common.ErrInvalidChapterNumber
	}
	wordCount := 0
	if req.WordCount != nil {
		if *req.WordCount < 0 {
			return nil, common.ErrInvalidInput
		}
		wordCount = *req.WordCount
	}

	chapter := &domain.ArticleChapter{
		ArticleID:     articleID,
		Title:         title,
		Content:       content,
		ChapterNumber: req.ChapterNumber,
		WordCount:     wordCount,
	}
	if err := s.repo.Create(chapter); err != nil {
		logger.Get().Error().Err(err).Str("article_id", articleID).Msg("failed to create chapter")
		return nil, common.ErrDatabase
	}

	s.cacheDelete(ctx, cache.ArticleKey(articleID), cache.ArticleListKey(userID))

	return chapter, nil
}

// Update applies a sparse field set to a chapter, then invalidates the
// parent article detail and the chapter detail cache keys.
func (s *chapterService) Update(ctx context.Context, userID, articleID, chapterID string, req *domain.UpdateChapterRequest) (*domain.ArticleChapter, error) {
	if err := s.requireArticle(articleID, userID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(chapterID, articleID)
	if err != nil {
		logger.Get().Error().Err(err).Str("chapter_id", chapterID).Msg("failed to find chapter")
		return nil, common.ErrDatabase
	}
	if existing == nil {
		return nil, common.ErrChapterNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, common.ErrTitleRequired
		}
		updates["title"] = title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, common.ErrContentRequired
		}
		updates["content"] = content
	}
	if req.WordCount != nil {
		if *req.WordCount < 0 {
			return nil, common.ErrInvalidInput
		}
		updates["word_count"] = *req.WordCount
	}
	if len(updates) == 0 {
		return nil, common.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now().UTC()

	chapter, err := s.repo.Update(chapterID, articleID, updates)
	if err != nil {
		logger.Get().Error().Err(err).Str("chapter_id", chapterID).Msg("failed to update chapter")
		return nil, common.ErrDatabase
	}
	if chapter == nil {
		return nil, common.ErrChapterNotFound
	}

	s.cacheDelete(ctx, cache.ArticleKey(articleID), cache.ChapterKey(chapterID))

	return chapter, nil
}

// Delete soft-deletes a chapter. The article list key is invalidated
// too because its chapter counts change.
func (s *chapterService) Delete(ctx context.Context, userID, articleID, chapterID string) error {
	if err := s.requireArticle(articleID, userID); err != nil {
		return err
	}

	deleted, err := s.repo.SoftDelete(chapterID, articleID)
	if err != nil {
		logger.Get().Error().Err(err).Str("chapter_id", chapterID).Msg("failed to delete chapter")
		return common.ErrDatabase
	}
	if !deleted {
		return common.ErrChapterNotFound
	}

	s.cacheDelete(ctx, cache.ArticleKey(articleID), cache.ChapterKey(chapterID), cache.ArticleListKey(userID))

	return nil
}
