// models/activity_log.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

const ActivityLogTable = "lab_activity_logs"

// Actions recorded in the activity log.
const (
	ActionAddItem     = "ADD_ITEM"
	ActionUpdateItem  = "UPDATE_ITEM"
	ActionDeleteItem  = "DELETE_ITEM"
	ActionCollectItem = "COLLECT_ITEM"
	ActionReturnItem  = "RETURN_ITEM"
	ActionMakeAdmin   = "MAKE_ADMIN"
	ActionDeleteUser  = "DELETE_USER"
)

// ActivityLog is an append-only audit row written after each successful
// mutating operation. Writing it is best effort: a failed insert must never
// fail or roll back the operation it describes.
type ActivityLog struct {
	ID         string         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActorEmail string         `gorm:"size:255;index;not null" json:"actorEmail"`
	Action     string         `gorm:"size:40;index;not null" json:"action"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	IPAddress  string         `gorm:"size:45" json:"ipAddress,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"timestamp"`
}

func (ActivityLog) TableName() string { return ActivityLogTable }
