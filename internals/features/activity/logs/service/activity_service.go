package service

import (
	"log"

	"gorm.io/gorm"

	"bokjisa_backend/internals/features/activity/logs/model"
)

// Entry is what callers hand to the audit sink.
type Entry struct {
	UserName   string
	Action     string
	TargetType string
	TargetName string
	Detail     string
}

// LogActivity is fire-and-forget: the write happens on its own goroutine and
// a failure is only logged. The originating operation must never block on or
// roll back because of the audit sink.
func LogActivity(db *gorm.DB, e Entry) {
	rec := model.ActivityLogModel{
		ActivityLogUserName: e.UserName,
		ActivityLogAction:   e.Action,
	}
	if e.TargetType != "" {
		rec.ActivityLogTargetType = &e.TargetType
	}
	if e.TargetName != "" {
		rec.ActivityLogTargetName = &e.TargetName
	}
	if e.Detail != "" {
		rec.ActivityLogDetail = &e.Detail
	}

	go func() {
		if err := db.Create(&rec).Error; err != nil {
			log.Printf("[ERROR] activity log write failed (action=%s): %v", e.Action, err)
		}
	}()
}
