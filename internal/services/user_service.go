package services

import (
	"errors"
	"fmt"

	"github.com/ozgurkara/todo-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns the user with the given id.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// ChangePassword re-verifies the current password, then stores a hash of
// the new one.
func (s *UserService) ChangePassword(id uint, current, newPassword string) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(user).Update("hashed_password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ChangePhoneNumber re-verifies the current password, then stores the new
// phone number.
func (s *UserService) ChangePhoneNumber(id uint, current, phoneNumber string) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	if err := s.db.Model(user).Update("phone_number", phoneNumber).Error; err != nil {
		return fmt.Errorf("failed to update phone number: %w", err)
	}
	return nil
}
