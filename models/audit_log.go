package models

import "time"

// AuditLog records who did what to which record. Written on loan
// create/return/delete and user delete.
type AuditLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ActorID       uint      `gorm:"index" json:"actor_id"`
	ActorUsername string    `gorm:"size:100" json:"actor_username"`
	Action        string    `gorm:"size:40;not null" json:"action"` // e.g. loan.create, user.delete
	Entity        string    `gorm:"size:40;not null" json:"entity"`
	EntityID      uint      `gorm:"index" json:"entity_id"`
	Detail        *string   `gorm:"size:500" json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
