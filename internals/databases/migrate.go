// file: internals/databases/migrate.go
package database

import (
	"log"

	creditModel "bokjisa_backend/internals/features/academics/creditsources/model"
	planModel "bokjisa_backend/internals/features/academics/plans/model"
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
	activityModel "bokjisa_backend/internals/features/activity/logs/model"
	documentModel "bokjisa_backend/internals/features/documents/model"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	userModel "bokjisa_backend/internals/features/users/user/model"
)

// AutoMigrate keeps the schema in step with the models. Additive only;
// destructive changes go through hand-written SQL.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&subjectModel.SubjectPresetModel{},
		&subjectModel.SelfStudyPresetModel{},
		&creditModel.PriorSubjectModel{},
		&creditModel.CertificateCreditModel{},
		&creditModel.SelfStudyCreditModel{},
		&planModel.StudentPlanModel{},
		&documentModel.StudentDocumentModel{},
		&activityModel.ActivityLogModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ migrations applied.")
}
