package services

import (
	"errors"
	"fmt"

	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both an unknown username and a password
// mismatch so a caller cannot distinguish the two.
var ErrInvalidCredentials = errors.New("incorrect username or password")

type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register hashes the password and persists a new active user.
func (s *AuthService) Register(req *dto.CreateUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:          req.Email,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: string(hash),
		Role:           req.Role,
		PhoneNumber:    req.PhoneNumber,
		IsActive:       true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login authenticates a username/password pair and issues a bearer token.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
