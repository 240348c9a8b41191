package services

import (
	"context"

	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/models"
	"github.com/lharari/jobboard/internal/search"
	"gorm.io/gorm"
)

type JobService struct {
	DB    *gorm.DB
	Index *search.JobIndex
}

func NewJobService(db *gorm.DB, index *search.JobIndex) *JobService {
	return &JobService{
		DB:    db,
		Index: index,
	}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Level:       req.Level,
		Type:        req.Type,
		Salary:      req.Salary,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	s.Index.IndexJob(ctx, job)
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Level != nil {
		job.Level = *req.Level
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}

	if err := s.DB.WithContext(ctx).Save(&job).Error; err != nil {
		return nil, err
	}
	s.Index.IndexJob(ctx, &job)
	return &job, nil
}

func (s *JobService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.Index.RemoveJob(ctx, id)
	return nil
}

// Search queries the Elasticsearch index; the database is never consulted
// here, discovery is the index's job.
func (s *JobService) Search(ctx context.Context, req dtos.JobSearchRequest) ([]models.Job, error) {
	return s.Index.Search(ctx, req)
}

// SearchEnabled reports whether job discovery is backed by an index.
func (s *JobService) SearchEnabled() bool {
	return s.Index.Enabled()
}
