package domain

import "time"

// ArticleChapter represents a chapter of an article. Chapters carry no
// owner of their own; authorization is always derived through the
// parent article.
type ArticleChapter struct {
	ID            string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	ArticleID     string     `gorm:"column:article_id;index;type:uuid" json:"articleId"`
	Title         string     `gorm:"column:title;type:text" json:"title"`
	Content       string     `gorm:"column:content;type:text" json:"content"`
	ChapterNumber int        `gorm:"column:chapter_number" json:"chapterNumber"`
	WordCount     int        `gorm:"column:word_count;default:0" json:"wordCount"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt     *time.Time `gorm:"column:deleted_at;index" json:"-"`
}

// TableName returns the table name
func (ArticleChapter) TableName() string {
	return "article_chapters"
}

// CreateChapterRequest carries the user-settable fields for chapter creation
type CreateChapterRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	ChapterNumber int    `json:"chapterNumber"`
	WordCount     *int   `json:"wordCount"`
}

// UpdateChapterRequest carries optional fields for a sparse chapter update
type UpdateChapterRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	WordCount *int    `json:"wordCount"`
}
