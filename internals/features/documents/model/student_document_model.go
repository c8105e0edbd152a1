// models/student_document.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentDocumentModel: metadata for one uploaded file (diploma scans,
// transcripts, certificate copies). The bytes live in Supabase storage; the
// row carries the object path for signed-URL issuance.
type StudentDocumentModel struct {
	StudentDocumentID          uuid.UUID `gorm:"column:student_document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_document_id"`
	StudentDocumentStudentID   uuid.UUID `gorm:"column:student_document_student_id;type:uuid;not null;index" json:"student_document_student_id"`
	StudentDocumentName        string    `gorm:"column:student_document_name;type:varchar(160);not null" json:"student_document_name"`
	StudentDocumentObjectPath  string    `gorm:"column:student_document_object_path;type:varchar(255);not null" json:"-"`
	StudentDocumentContentType string    `gorm:"column:student_document_content_type;type:varchar(80);not null" json:"student_document_content_type"`
	StudentDocumentSizeBytes   int64     `gorm:"column:student_document_size_bytes;not null" json:"student_document_size_bytes"`
	StudentDocumentUploadedBy  string    `gorm:"column:student_document_uploaded_by;type:varchar(80)" json:"student_document_uploaded_by"`
	StudentDocumentCreatedAt   time.Time `gorm:"column:student_document_created_at;not null;default:now()" json:"student_document_created_at"`
}

func (StudentDocumentModel) TableName() string { return "student_documents" }

func (m *StudentDocumentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentDocumentID == uuid.Nil {
		m.StudentDocumentID = uuid.New()
	}
	return nil
}
