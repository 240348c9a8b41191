package services

import (
	"context"

	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/models"
	"gorm.io/gorm"
)

type TemplateService struct {
	DB *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{DB: db}
}

// List returns all templates, most recent first.
func (s *TemplateService) List(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&templates).Error
	return templates, err
}

func (s *TemplateService) Get(ctx context.Context, id uint) (*models.Template, error) {
	var tpl models.Template
	if err := s.DB.WithContext(ctx).First(&tpl, id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// FindByID satisfies TemplateFinder for the message composer.
func (s *TemplateService) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	return s.Get(ctx, id)
}

func (s *TemplateService) Create(ctx context.Context, req *dtos.TemplateCreationRequest) (*models.Template, error) {
	tpl := &models.Template{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.DB.WithContext(ctx).Create(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Update(ctx context.Context, id uint, req *dtos.TemplateUpdateRequest) (*models.Template, error) {
	var tpl models.Template
	if err := s.DB.WithContext(ctx).First(&tpl, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.Subject != nil {
		tpl.Subject = *req.Subject
	}
	if req.Body != nil {
		tpl.Body = *req.Body
	}

	if err := s.DB.WithContext(ctx).Save(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Template{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
