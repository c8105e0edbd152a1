// file: internals/features/documents/controller/document_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activity "bokjisa_backend/internals/features/activity/logs/service"
	"bokjisa_backend/internals/features/documents/model"
	"bokjisa_backend/internals/features/documents/service"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

const maxDocumentSize = 10 << 20 // 10 MiB per upload

type DocumentController struct {
	DB      *gorm.DB
	Storage *service.Storage
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db, Storage: service.NewStorage()}
}

func (ctl *DocumentController) loadStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	return &student, nil
}

// GET /students/:id/documents
func (ctl *DocumentController) List(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	var docs []model.StudentDocumentModel
	if err := ctl.DB.
		Where("student_document_student_id = ?", student.StudentID).
		Order("student_document_created_at DESC").
		Find(&docs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	return helper.JsonOK(c, "documents", docs)
}

// POST /students/:id/documents (multipart field "file")
func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}
	if fileHeader.Size > maxDocumentSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds 10MB limit")
	}

	doc := model.StudentDocumentModel{
		StudentDocumentID:          uuid.New(),
		StudentDocumentStudentID:   student.StudentID,
		StudentDocumentName:        fileHeader.Filename,
		StudentDocumentContentType: fileHeader.Header.Get("Content-Type"),
		StudentDocumentSizeBytes:   fileHeader.Size,
		StudentDocumentUploadedBy:  helper.GetUserNameFromToken(c),
	}

	objectPath, err := ctl.Storage.Upload(fileHeader, student.StudentID.String(), doc.StudentDocumentID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Storage upload failed: "+err.Error())
	}
	doc.StudentDocumentObjectPath = objectPath

	if err := ctl.DB.Create(&doc).Error; err != nil {
		// keep the bucket consistent with the metadata table
		if delErr := ctl.Storage.Delete(objectPath); delErr != nil {
			log.Printf("[ERROR] orphaned object %s: %v", objectPath, delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "document.upload",
		TargetType: "document",
		TargetName: doc.StudentDocumentName,
		Detail:     student.StudentName,
	})
	return helper.JsonCreated(c, "Document uploaded", doc)
}

// GET /students/:id/documents/:documentId/url
func (ctl *DocumentController) SignedURL(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}

	var doc model.StudentDocumentModel
	if err := ctl.DB.
		Where("student_document_id = ? AND student_document_student_id = ?", documentID, student.StudentID).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	url, err := ctl.Storage.SignedURL(doc.StudentDocumentObjectPath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Signed URL failed: "+err.Error())
	}
	return helper.JsonOK(c, "url", fiber.Map{
		"url":        url,
		"expires_in": service.SignedURLTTL,
	})
}

// DELETE /students/:id/documents/:documentId
func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}

	var doc model.StudentDocumentModel
	if err := ctl.DB.
		Where("student_document_id = ? AND student_document_student_id = ?", documentID, student.StudentID).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	if err := ctl.Storage.Delete(doc.StudentDocumentObjectPath); err != nil {
		// metadata delete still proceeds; the object is retried manually
		log.Printf("[WARN] storage delete failed for %s: %v", doc.StudentDocumentObjectPath, err)
	}
	if err := ctl.DB.Delete(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "document.delete",
		TargetType: "document",
		TargetName: doc.StudentDocumentName,
		Detail:     student.StudentName,
	})
	return helper.JsonDeleted(c, "Document deleted", fiber.Map{"student_document_id": doc.StudentDocumentID})
}
