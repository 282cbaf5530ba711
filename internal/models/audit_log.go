package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of a notable action. Rows are written
// when an admin mutation succeeds and are never updated or deleted.
type AuditLog struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	UserID    *string        `gorm:"size:36;index" json:"userId,omitempty"`
	Action    string         `gorm:"size:100;not null" json:"action"`
	TableName *string        `gorm:"size:64" json:"tableName,omitempty"`
	RecordID  *string        `gorm:"size:36" json:"recordId,omitempty"`
	OldValues datatypes.JSON `json:"oldValues,omitempty"`
	NewValues datatypes.JSON `json:"newValues,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	IPAddress *string        `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent *string        `gorm:"size:255" json:"userAgent,omitempty"`

	// Actor profile; nullable because system actions have no actor.
	User *Profile `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
