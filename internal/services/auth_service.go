package services

import (
	"context"
	"errors"

	"github.com/lharari/jobboard/internal/auth"
	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

// Register creates a recruiter account. Admins are provisioned out of
// band, not through the public endpoint.
func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleRecruiter,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (string, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.ComparePassword(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return auth.GenerateToken(s.JWTSecret, user.ID, user.Role)
}
