// file: internals/features/documents/service/storage_service.go
package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"

	"bokjisa_backend/internals/configs"
)

// SignedURLTTL: document links expire after an hour; the UI re-requests.
const SignedURLTTL = 3600

// Storage wraps the Supabase bucket the student documents live in.
type Storage struct {
	client *storage.Client
	bucket string
}

func NewStorage() *Storage {
	return &Storage{
		client: storage.NewClient(configs.SupabaseURL+"/storage/v1", configs.SupabaseKey, nil),
		bucket: configs.SupabaseBucket,
	}
}

// Upload streams one multipart file into the bucket under
// <studentID>/<documentID><ext> and returns the object path.
func (s *Storage) Upload(fileHeader *multipart.FileHeader, studentID, documentID string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/%s%s", studentID, documentID, filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := s.client.UploadFile(s.bucket, objectPath, &buf, storage.FileOptions{
		ContentType: &contentType,
	}); err != nil {
		return "", err
	}
	return objectPath, nil
}

// SignedURL issues a short-lived download link for a stored object.
func (s *Storage) SignedURL(objectPath string) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.bucket, objectPath, SignedURLTTL)
	if err != nil {
		return "", err
	}
	return resp.SignedURL, nil
}

// Delete removes the object; a missing object is not an error worth failing
// the metadata delete over.
func (s *Storage) Delete(objectPath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{objectPath})
	return err
}
