package admin

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"photosite/internal/domain"
	"photosite/internal/pkg/jwt"
)

var ErrBadCredentials = errors.New("invalid email or password")

// AdminStore owns admin accounts.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Create(ctx context.Context, u *domain.AdminUser) error
}

type AuthService struct {
	store AdminStore
	jwt   *jwt.Service
	log   *zap.Logger
}

func NewAuthService(store AdminStore, jwtService *jwt.Service, log *zap.Logger) *AuthService {
	return &AuthService{store: store, jwt: jwtService, log: log}
}

// Login verifies the password and returns a signed access token. Unknown
// emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrBadCredentials
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn("failed admin login", zap.String("email", email))
		return "", nil, ErrBadCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.log.Info("admin logged in", zap.String("email", email))
	return token, user, nil
}

// HashPassword is used by account provisioning (the seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
