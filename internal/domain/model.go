package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds pagination, sorting, searching, and filtering parameters.
//
// Search is a free-text term matched case-insensitively as a substring
// against each entity's designated string fields (OR across fields).
// Filter holds structured field=value conditions that are AND-combined
// with the search. An empty Search matches everything.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
	Filter   map[string]string
}

// PageResult is one page of items together with pagination metadata.
// Page reflects the effective page that was served, after clamping
// into [1, TotalPages].
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
