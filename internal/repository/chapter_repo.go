package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"gorm.io/gorm"
)

// ChapterRepository handles article chapter data access. Chapters are
// scoped by their parent article id; ownership of the parent is checked
// by the service through ArticleRepository before any call lands here.
type ChapterRepository interface {
	ListByArticle(articleID string) ([]domain.ArticleChapter, error)
	FindByID(id, articleID string) (*domain.ArticleChapter, error)
	Create(chapter *domain.ArticleChapter) error
	Update(id, articleID string, updates map[string]interface{}) (*domain.ArticleChapter, error)
	SoftDelete(id, articleID string) (bool, error)
}

type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository creates a new ChapterRepository
func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

// ListByArticle retrieves an article's chapters ordered by chapter number
func (r *chapterRepository) ListByArticle(articleID string) ([]domain.ArticleChapter, error) {
	var chapters []domain.ArticleChapter
	err := r.db.
		Where("article_id = ? AND deleted_at IS NULL", articleID).
		Order("chapter_number ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

// FindByID retrieves a single undeleted chapter of the given article
func (r *chapterRepository) FindByID(id, articleID string) (*domain.ArticleChapter, error) {
	var chapter domain.ArticleChapter
	err := r.db.
		Where("id = ? AND article_id = ? AND deleted_at IS NULL", id, articleID).
		First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}

// Create inserts a chapter with a generated id and default timestamps
func (r *chapterRepository) Create(chapter *domain.ArticleChapter) error {
	if chapter.ID == "" {
		chapter.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	chapter.CreatedAt = now
	chapter.UpdatedAt = now
	return r.db.Create(chapter).Error
}

// Update applies a sparse field set to an undeleted chapter and returns
// the updated row.
func (r *chapterRepository) Update(id, articleID string, updates map[string]interface{}) (*domain.ArticleChapter, error) {
	err := r.db.Model(&domain.ArticleChapter{}).
		Where("id = ? AND article_id = ? AND deleted_at IS NULL", id, articleID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id, articleID)
}

// SoftDelete stamps deleted_at on a chapter
func (r *chapterRepository) SoftDelete(id, articleID string) (bool, error) {
	res := r.db.Model(&domain.ArticleChapter{}).
		Where("id = ? AND article_id = ? AND deleted_at IS NULL", id, articleID).
		Update("deleted_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
