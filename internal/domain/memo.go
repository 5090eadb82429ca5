package domain

import "time"

// Memo represents a user memo. Color persists as a descriptive token;
// the wire format uses the integer enum (see enums.go). Soft-deleted
// rows keep their data but carry a deleted_at timestamp and are
// excluded from every query.
type Memo struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID    string     `gorm:"column:user_id;index;type:uuid" json:"userId"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	Color     string     `gorm:"column:color;size:50;default:'yellow'" json:"color"`
	IsPinned  bool       `gorm:"column:is_pinned;default:false" json:"isPinned"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index" json:"-"`
}

// TableName returns the table name
func (Memo) TableName() string {
	return "memos"
}

// MemoResponse is the wire shape of a memo (color as integer enum)
type MemoResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Color     int       `json:"color"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse converts a stored memo to its wire shape
func (m *Memo) ToResponse() *MemoResponse {
	return &MemoResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		Color:     MemoColorFromToken(m.Color),
		IsPinned:  m.IsPinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateMemoRequest carries the user-settable fields for memo creation
type CreateMemoRequest struct {
	Content  string `json:"content"`
	Color    *int   `json:"color"`
	IsPinned *bool  `json:"isPinned"`
}

// UpdateMemoRequest carries optional fields for a sparse memo update.
// Absent fields leave the stored value untouched.
type UpdateMemoRequest struct {
	Content  *string `json:"content"`
	Color    *int    `json:"color"`
	IsPinned *bool   `json:"isPinned"`
}
