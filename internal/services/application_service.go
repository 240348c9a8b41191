package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"regexp"

	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/models"
	"github.com/lharari/jobboard/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// Basic local@domain.tld shape, same check on apply and on override.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether addr has a basic local@domain.tld shape.
func IsValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}

type ApplicationService struct {
	DB    *gorm.DB
	Files *storage.LocalStore
}

func NewApplicationService(db *gorm.DB, files *storage.LocalStore) *ApplicationService {
	return &ApplicationService{
		DB:    db,
		Files: files,
	}
}

// Apply stores the resume and creates an application in status "new".
// The job must exist; candidates cannot apply to deleted postings.
func (s *ApplicationService) Apply(ctx context.Context, jobID uint, req *dtos.ApplyRequest, resume *multipart.FileHeader) (*models.Application, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		return nil, err
	}
	if !IsValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	fileName, err := s.Files.SaveResume(resume)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:     job.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		FilePath:  fileName,
		Status:    models.StatusNew,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		// application row failed; don't leave the upload orphaned
		if cleanupErr := s.Files.Delete(fileName); cleanupErr != nil {
			log.Printf("applications: cleanup %s: %v", fileName, cleanupErr)
		}
		return nil, err
	}
	return app, nil
}

// List returns all applications, newest first, with jobs preloaded.
func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).Preload("Job").Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// ListForJob returns the applications submitted to one job, newest first.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// Get fetches one application with its job preloaded.
func (s *ApplicationService) Get(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.WithContext(ctx).Preload("Job").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// SetStatus applies a status change. The only business rule is the
// whitelist check; transitions between statuses are otherwise free, with
// last-write-wins under concurrent updates.
func (s *ApplicationService) SetStatus(ctx context.Context, id uint, status string) (*models.Application, error) {
	if !models.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var app models.Application
	if err := s.DB.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&app).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes an application and its stored resume. Deletion is
// terminal; file removal errors are logged and ignored.
func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	var app models.Application
	if err := s.DB.WithContext(ctx).First(&app, id).Error; err != nil {
		return err
	}
	if err := s.Files.Delete(app.FilePath); err != nil {
		log.Printf("applications: delete file %s: %v", app.FilePath, err)
	}
	return s.DB.WithContext(ctx).Delete(&app).Error
}
