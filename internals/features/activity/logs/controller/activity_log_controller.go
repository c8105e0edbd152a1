// file: internals/features/activity/logs/controller/activity_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bokjisa_backend/internals/features/activity/logs/model"
	helper "bokjisa_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

var activityLogSortable = map[string]string{
	"created_at": "activity_log_created_at",
	"action":     "activity_log_action",
	"user":       "activity_log_user_name",
}

// GET /activity-logs?action=&user=&page=&per_page=
func (ctl *ActivityLogController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.Model(&model.ActivityLogModel{})
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		q = q.Where("activity_log_action = ?", action)
	}
	if user := strings.TrimSpace(c.Query("user")); user != "" {
		q = q.Where("activity_log_user_name ILIKE ?", "%"+user+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var logs []model.ActivityLogModel
	if err := q.
		Order(params.SafeOrderClause(activityLogSortable, "created_at")).
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	return helper.JsonList(c, "activity logs", logs, helper.BuildMeta(total, params))
}
