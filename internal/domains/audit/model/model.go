package model

import "time"

const (
	TableName  = "audit_logs"
	EntityName = "audit"

	FieldID         = "id"
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
	FieldAction     = "action"
	FieldOldValue   = "old_value"
	FieldNewValue   = "new_value"
	FieldActor      = "actor"
	FieldCreatedAt  = "created_at"

	EntityTypeBooking = "booking"
	EntityTypeUser    = "user"

	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusChange = "status_change"
)

// AuditLog rows are append-only; they are never updated or deleted.
type AuditLog struct {
	ID         string    `db:"id"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Action     string    `db:"action"`
	OldValue   string    `db:"old_value"`
	NewValue   string    `db:"new_value"`
	Actor      string    `db:"actor"`
	CreatedAt  time.Time `db:"created_at"`
}
