package domain

import "time"

// Article represents a user article. Status persists as a descriptive
// token (draft/published/archived); the wire format uses the integer
// enum.
type Article struct {
	ID            string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID        string     `gorm:"column:user_id;index;type:uuid" json:"userId"`
	Title         string     `gorm:"column:title;type:text" json:"title"`
	Description   *string    `gorm:"column:description;type:text" json:"description"`
	CoverImageURL *string    `gorm:"column:cover_image_url;type:text" json:"coverImageUrl"`
	Category      *string    `gorm:"column:category;type:text" json:"category"`
	Status        string     `gorm:"column:status;size:50;default:'draft'" json:"status"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt     *time.Time `gorm:"column:deleted_at;index" json:"-"`
}

// TableName returns the table name
func (Article) TableName() string {
	return "articles"
}

// ArticleResponse is the wire shape of an article (status as integer enum)
type ArticleResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	CoverImageURL *string   `json:"coverImageUrl"`
	Category      *string   `json:"category"`
	Status        int       `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToResponse converts a stored article to its wire shape
func (a *Article) ToResponse() *ArticleResponse {
	return &ArticleResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Title:         a.Title,
		Description:   a.Description,
		CoverImageURL: a.CoverImageURL,
		Category:      a.Category,
		Status:        ArticleStatusFromToken(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ArticleWithCount pairs an article with its live chapter count.
// This is the storage shape cached for the article list.
type ArticleWithCount struct {
	Article      Article `gorm:"embedded" json:"article"`
	ChapterCount int64   `gorm:"column:chapter_count" json:"chapterCount"`
}

// ArticleListItem is the wire shape of an article list entry
type ArticleListItem struct {
	Article      *ArticleResponse `json:"article"`
	ChapterCount int64            `json:"chapterCount"`
}

// ArticleDetail pairs an article with its ordered chapters.
// This is the storage shape cached for the article detail.
type ArticleDetail struct {
	Article  Article          `json:"article"`
	Chapters []ArticleChapter `json:"chapters"`
}

// ArticleDetailResponse is the wire shape of an article detail
type ArticleDetailResponse struct {
	Article  *ArticleResponse `json:"article"`
	Chapters []ArticleChapter `json:"chapters"`
}

// CreateArticleRequest carries the user-settable fields for article creation
type CreateArticleRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"coverImageUrl"`
	Category      *string `json:"category"`
}

// UpdateArticleRequest carries optional fields for a sparse article update
type UpdateArticleRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"coverImageUrl"`
	Category      *string `json:"category"`
	Status        *int    `json:"status"`
}
