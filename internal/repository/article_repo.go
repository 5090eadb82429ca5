package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"gorm.io/gorm"
)

// ArticleRepository handles article data access
type ArticleRepository interface {
	ListByUser(userID string) ([]domain.ArticleWithCount, error)
	FindByID(id, userID string) (*domain.Article, error)
	Create(article *domain.Article) error
	Update(id, userID string, updates map[string]interface{}) (*domain.Article, error)
	SoftDelete(id, userID string) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// ListByUser retrieves a user's articles with the count of live
// chapters per article, most recently updated first.
func (r *articleRepository) ListByUser(userID string) ([]domain.ArticleWithCount, error) {
	var rows []domain.ArticleWithCount
	err := r.db.Model(&domain.Article{}).
		Select("articles.*, COUNT(article_chapters.id) AS chapter_count").
		Joins("LEFT JOIN article_chapters ON article_chapters.article_id = articles.id AND article_chapters.deleted_at IS NULL").
		Where("articles.user_id = ? AND articles.deleted_at IS NULL", userID).
		Group("articles.id").
		Order("articles.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a single article owned by the user. Returns nil
// when the article does not exist, is soft-deleted, or belongs to
// someone else.
func (r *articleRepository) FindByID(id, userID string) (*domain.Article, error) {
	var article domain.Article
	err := r.db.
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create inserts an article with a generated id and default timestamps
func (r *articleRepository) Create(article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Status == "" {
		article.Status = domain.DefaultArticleStatusToken
	}
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	return r.db.Create(article).Error
}

// Update applies a sparse field set to an owned, undeleted article and
// returns the updated row.
func (r *articleRepository) Update(id, userID string, updates map[string]interface{}) (*domain.Article, error) {
	err := r.db.Model(&domain.Article{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id, userID)
}

// SoftDelete stamps deleted_at on an owned article
func (r *articleRepository) SoftDelete(id, userID string) (bool, error) {
	res := r.db.Model(&domain.Article{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Update("deleted_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
