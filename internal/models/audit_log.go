package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditAction string

const (
	AuditActionAccessDenied AuditAction = "access_denied"
	AuditActionUserBlocked  AuditAction = "user_blocked"
	AuditActionUserUnblock  AuditAction = "user_unblocked"
)

// AuditLog records security-relevant events, most importantly denied
// access attempts on owned resources (potential IDOR probes).
type AuditLog struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID     *primitive.ObjectID    `json:"user_id" bson:"user_id"`
	Action     AuditAction            `json:"action" bson:"action"`
	Resource   string                 `json:"resource" bson:"resource"`
	ResourceID string                 `json:"resource_id" bson:"resource_id"`
	IPAddress  string                 `json:"ip_address" bson:"ip_address"`
	Metadata   map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at" bson:"created_at"`
}
