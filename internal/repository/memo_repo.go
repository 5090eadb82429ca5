package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"gorm.io/gorm"
)

// MemoRepository handles memo data access. Every query filters out
// soft-deleted rows and scopes by the owning user.
type MemoRepository interface {
	ListByUser(userID string) ([]domain.Memo, error)
	FindByID(id, userID string) (*domain.Memo, error)
	Create(memo *domain.Memo) error
	Update(id, userID string, updates map[string]interface{}) (*domain.Memo, error)
	SoftDelete(id, userID string) (bool, error)
}

type memoRepository struct {
	db *gorm.DB
}

// NewMemoRepository creates a new MemoRepository
func NewMemoRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

// ListByUser retrieves a user's memos, pinned first, then most recently
// updated.
func (r *memoRepository) ListByUser(userID string) ([]domain.Memo, error) {
	var memos []domain.Memo
	err := r.db.
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("is_pinned DESC").
		Order("updated_at DESC").
		Find(&memos).Error
	if err != nil {
		return nil, err
	}
	return memos, nil
}

// FindByID retrieves a single memo owned by the user. Returns nil when
// the memo does not exist, is soft-deleted, or belongs to someone else.
func (r *memoRepository) FindByID(id, userID string) (*domain.Memo, error) {
	var memo domain.Memo
	err := r.db.
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		First(&memo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &memo, nil
}

// Create inserts a memo with a generated id and default timestamps
func (r *memoRepository) Create(memo *domain.Memo) error {
	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	memo.CreatedAt = now
	memo.UpdatedAt = now
	return r.db.Create(memo).Error
}

// Update applies a sparse field set to an owned, undeleted memo and
// returns the updated row.
func (r *memoRepository) Update(id, userID string, updates map[string]interface{}) (*domain.Memo, error) {
	err := r.db.Model(&domain.Memo{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id, userID)
}

// SoftDelete stamps deleted_at on an owned memo. The not-already-deleted
// guard makes a second delete report not-found instead of succeeding.
func (r *memoRepository) SoftDelete(id, userID string) (bool, error) {
	res := r.db.Model(&domain.Memo{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Update("deleted_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
