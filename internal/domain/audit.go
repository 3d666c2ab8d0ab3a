package domain

import (
	"context"
	"time"
)

// AuditLog records one administrative action. Entries are append-only:
// there is no update path and no UpdatedAt column.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ActorID      uint      `gorm:"index" json:"actor_id"`
	Action       string    `gorm:"size:100;not null;index" json:"action"`
	ResourceType string    `gorm:"size:100;index" json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	Details      string    `gorm:"size:1000" json:"details"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditEntry is the input for recording an audit log.
type AuditEntry struct {
	ActorID      uint
	Action       string
	ResourceType string
	ResourceID   uint
	Details      string
}

// AuditRecorder is the write-side interface handed to mutating services.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}

// AuditRepository defines the data access interface for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *AuditLog) error
	List(ctx context.Context, req PageRequest) (*PageResult[AuditLog], error)
}

// AuditService defines the business logic interface for audit logs.
type AuditService interface {
	AuditRecorder
	ListLogs(ctx context.Context, req PageRequest) (*PageResult[AuditLog], error)
}
