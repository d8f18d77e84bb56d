package services

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobboard-api/internal/apperrors"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
)

type ResumeService struct {
	DB    *gorm.DB
	Store storage.ObjectStore
	Users *UserService
}

func NewResumeService(db *gorm.DB, store storage.ObjectStore, users *UserService) *ResumeService {
	return &ResumeService{DB: db, Store: store, Users: users}
}

// Upload writes the file to the bucket under a fresh path and then points
// the user's record at it. The object write and the row update are not
// atomic: if the row update fails, the object just written is deleted so
// it does not leak. A failure of that compensating delete is reported
// alongside the primary error, never in place of it.
func (s *ResumeService) Upload(ctx context.Context, email string, data []byte, fileName, contentType string) (*dtos.ResumeUploadData, *apperrors.Error) {
	if email == "" {
		return nil, apperrors.BadRequest("Email is required")
	}

	user, err := s.Users.LookupByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found with this email")
	}
	if user.UserType != models.RoleApplicant {
		return nil, apperrors.Forbidden("Only applicants can upload resumes")
	}

	objectName, objectPath := resumeObjectPath(email, fileName)

	resumeURL, err := s.Store.Put(ctx, objectPath, data, contentType)
	if err != nil {
		return nil, apperrors.Internal("Failed to upload resume to storage", err)
	}

	now := time.Now()
	updates := map[string]any{
		"resume_url":  resumeURL,
		"resume_path": objectPath,
		"updated_at":  now,
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Updates(updates).Error; err != nil {
		cause := err
		if rmErr := s.Store.Remove(ctx, objectPath); rmErr != nil {
			log.Printf("WARNING: rollback delete of %q failed: %v", objectPath, rmErr)
			cause = fmt.Errorf("%w (warning: rollback delete of %q failed: %v)", err, objectPath, rmErr)
		}
		return nil, apperrors.Internal("Failed to update resume URL in database", cause)
	}

	return &dtos.ResumeUploadData{
		Name:       user.Name,
		Email:      user.Email,
		ResumeURL:  resumeURL,
		FileName:   objectName,
		FileSize:   len(data),
		UploadedAt: now,
	}, nil
}

// GetResumeURL reports a missing user and a user without a resume as the
// same outward condition.
func (s *ResumeService) GetResumeURL(email string) (*dtos.ResumeGetData, *apperrors.Error) {
	if email == "" {
		return nil, apperrors.BadRequest("Email is required")
	}

	user, err := s.Users.LookupByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	if user.ResumeURL == "" {
		return nil, apperrors.NotFound("No resume uploaded for this user")
	}

	return &dtos.ResumeGetData{
		Name:      user.Name,
		Email:     user.Email,
		UserType:  string(user.UserType),
		ResumeURL: user.ResumeURL,
	}, nil
}

// Delete removes the stored object and clears the user's resume columns.
// A storage failure here is logged and the columns are cleared anyway;
// unlike upload, this direction tolerates the bucket and the row drifting
// apart.
func (s *ResumeService) Delete(ctx context.Context, email string) *apperrors.Error {
	if email == "" {
		return apperrors.BadRequest("Email is required")
	}

	user, err := s.Users.LookupByEmail(email)
	if err != nil {
		return apperrors.Internal("Internal server error", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}
	if user.UserType != models.RoleApplicant {
		return apperrors.Forbidden("Only applicants can have resumes")
	}
	if user.ResumeURL == "" {
		return apperrors.NotFound("No resume found to delete")
	}

	if err := s.Store.Remove(ctx, user.ResumePath); err != nil {
		log.Printf("WARNING: failed to delete resume object %q: %v", user.ResumePath, err)
	}

	updates := map[string]any{
		"resume_url":  "",
		"resume_path": "",
		"updated_at":  time.Now(),
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Updates(updates).Error; err != nil {
		return apperrors.Internal("Failed to update database", err)
	}
	return nil
}

// resumeObjectPath builds <email>/<sanitized-email>_<millis>.<ext>. The
// timestamp makes every upload land on a fresh object, so an upload never
// replaces an earlier one in place.
func resumeObjectPath(email, fileName string) (objectName, objectPath string) {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	sanitized := strings.ReplaceAll(email, "@", "_at_")
	sanitized = strings.ReplaceAll(sanitized, ".", "_")
	objectName = fmt.Sprintf("%s_%d.%s", sanitized, time.Now().UnixMilli(), ext)
	objectPath = email + "/" + objectName
	return objectName, objectPath
}
