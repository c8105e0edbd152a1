// models/activity_log.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogModel struct {
	ActivityLogID         uuid.UUID `gorm:"column:activity_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_log_id"`
	ActivityLogUserName   string    `gorm:"column:activity_log_user_name;type:varchar(80);not null" json:"activity_log_user_name"`
	ActivityLogAction     string    `gorm:"column:activity_log_action;type:varchar(60);not null" json:"activity_log_action"`
	ActivityLogTargetType *string   `gorm:"column:activity_log_target_type;type:varchar(60)" json:"activity_log_target_type,omitempty"`
	ActivityLogTargetName *string   `gorm:"column:activity_log_target_name;type:varchar(160)" json:"activity_log_target_name,omitempty"`
	ActivityLogDetail     *string   `gorm:"column:activity_log_detail;type:text" json:"activity_log_detail,omitempty"`
	ActivityLogCreatedAt  time.Time `gorm:"column:activity_log_created_at;not null;default:now();index" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityLogID == uuid.Nil {
		m.ActivityLogID = uuid.New()
	}
	return nil
}
