package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/internal/repository"
	"github.com/venomous-dashboard/notes-service/pkg/cache"
	"github.com/venomous-dashboard/notes-service/pkg/logger"
)

// ArticleService business logic for articles. The article detail keeps
// its chapters nested, so chapter mutations invalidate the article
// detail key as well (see ChapterService).
type ArticleService interface {
	List(ctx context.Context, userID string) ([]*domain.ArticleListItem, error)
	Get(ctx context.Context, userID, id string) (*domain.ArticleDetailResponse, error)
	Create(ctx context.Context, userID string, req *domain.CreateArticleRequest) (*domain.ArticleResponse, error)
	Update(ctx context.Context, userID, id string, req *domain.UpdateArticleRequest) (*domain.ArticleResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type articleService struct {
	cacheHelper
	repo        repository.ArticleRepository
	chapterRepo repository.ChapterRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(repo repository.ArticleRepository, chapterRepo repository.ChapterRepository, cacheService cache.Service) ArticleService {
	return &articleService{
		cacheHelper: cacheHelper{cache: cacheService},
		repo:        repo,
		chapterRepo: chapterRepo,
	}
}

// List retrieves a user's articles with per-article chapter counts,
// most recently updated first.
func (s *articleService) List(ctx context.Context, userID string) ([]*domain.ArticleListItem, error) {
	key := cache.ArticleListKey(userID)

	var cached []domain.ArticleWithCount
	if s.cacheGet(ctx, key, &cached) {
		return articlesToListItems(cached), nil
	}

	rows, err := s.repo.ListByUser(userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("user_id", userID).Msg("failed to list articles")
		return nil, common.ErrDatabase
	}

	s.cacheSet(ctx, key, rows, cache.TTLArticleList)

	return articlesToListItems(rows), nil
}

// Get retrieves an article with its chapters ordered by chapter number.
// The detail entry is cached as a whole; a hit is only honored when the
// cached article belongs to the requester.
func (s *articleService) Get(ctx context.Context, userID, id string) (*domain.ArticleDetailResponse, error) {
	key := cache.ArticleKey(id)

	var cached domain.ArticleDetail
	if s.cacheGet(ctx, key, &cached) && cached.Article.UserID == userID {
		return detailToResponse(&cached), nil
	}

	article, err := s.repo.FindByID(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", id).Msg("failed to find article")
		return nil, common.ErrDatabase
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}

	chapters, err := s.chapterRepo.ListByArticle(id)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", id).Msg("failed to list chapters")
		return nil, common.ErrDatabase
	}

	detail := &domain.ArticleDetail{Article: *article, Chapters: chapters}
	s.cacheSet(ctx, key, detail, cache.TTLArticleDetail)

	return detailToResponse(detail), nil
}

// Create validates and inserts an article, then invalidates the user's
// article list cache.
func (s *articleService) Create(ctx context.Context, userID string, req *domain.CreateArticleRequest) (*domain.ArticleResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, common.ErrTitleRequired
	}
	if err := validateCoverImageURL(req.CoverImageURL); err != nil {
		return nil, err
	}

	article := &domain.Article{
		UserID:        userID,
		Title:         title,
		Description:   emptyToNil(req.Description),
		CoverImageURL: emptyToNil(req.CoverImageURL),
		Category:      emptyToNil(req.Category),
		Status:        domain.DefaultArticleStatusToken,
	}
	if err := s.repo.Create(article); err != nil {
		logger.Get().Error().Err(err).Str("user_id", userID).Msg("failed to create article")
		return nil, common.ErrDatabase
	}

	s.cacheDelete(ctx, cache.ArticleListKey(userID))

	return article.ToResponse(), nil
}

// Update applies a sparse field set to an owned article, then
// invalidates both the list and the detail cache keys.
func (s *articleService) Update(ctx context.Context, userID, id string, req *domain.UpdateArticleRequest) (*domain.ArticleResponse, error) {
	existing, err := s.repo.FindByID(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", id).Msg("failed to find article")
		return nil, common.ErrDatabase
	}
	if existing == nil {
		return nil, common.ErrArticleNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, common.ErrTitleRequired
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverImageURL != nil {
		if err := validateCoverImageURL(req.CoverImageURL); err != nil {
			return nil, err
		}
		updates["cover_image_url"] = *req.CoverImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		updates["status"] = domain.ArticleStatusToToken(*req.Status)
	}
	if len(updates) == 0 {
		return nil, common.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now().UTC()

	article, err := s.repo.Update(id, userID, updates)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", id).Msg("failed to update article")
		return nil, common.ErrDatabase
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}

	s.cacheDelete(ctx, cache.ArticleListKey(userID), cache.ArticleKey(id))

	return article.ToResponse(), nil
}

// Delete soft-deletes an owned article. Chapters stay in place; they
// become unreachable because every chapter operation re-derives
// authorization through the parent article.
func (s *articleService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.repo.SoftDelete(id, userID)
	if err != nil {
		logger.Get().Error().Err(err).Str("article_id", id).Msg("failed to delete article")
		return common.ErrDatabase
	}
	if !deleted {
		return common.ErrArticleNotFound
	}

	s.cacheDelete(ctx, cache.ArticleListKey(userID), cache.ArticleKey(id))

	return nil
}

// validateCoverImageURL accepts an absent or empty cover image and
// rejects anything that does not parse as an absolute URL.
func validateCoverImageURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return common.ErrInvalidInput
	}
	return nil
}

// emptyToNil stores absent or empty optional strings as NULL
func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func articlesToListItems(rows []domain.ArticleWithCount) []*domain.ArticleListItem {
	items := make([]*domain.ArticleListItem, len(rows))
	for i := range rows {
		items[i] = &domain.ArticleListItem{
			Article:      rows[i].Article.ToResponse(),
			ChapterCount: rows[i].ChapterCount,
		}
	}
	return items
}

func detailToResponse(detail *domain.ArticleDetail) *domain.ArticleDetailResponse {
	chapters := detail.Chapters
	if chapters == nil {
		chapters = []domain.ArticleChapter{}
	}
	return &domain.ArticleDetailResponse{
		Article:  detail.Article.ToResponse(),
		Chapters: chapters,
	}
}
