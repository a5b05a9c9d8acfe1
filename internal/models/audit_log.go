package models

import "gorm.io/datatypes"

// Audit actions.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog records one change to journal data along with the figures
// involved.
type AuditLog struct {
	Base
	Actor        string         `gorm:"not null;default:'owner'" json:"actor"`
	Action       string         `gorm:"not null;index" json:"action"`
	ResourceType string         `gorm:"not null;index:idx_audit_resource" json:"resource_type"`
	ResourceID   string         `gorm:"type:uuid;index:idx_audit_resource" json:"resource_id"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
}
