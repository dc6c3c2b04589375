package services

import (
	"errors"
	"fmt"

	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/models"
	"gorm.io/gorm"
)

// ErrTodoNotFound is returned both when a todo does not exist and when it
// belongs to another user, so ownership is never leaked.
var ErrTodoNotFound = errors.New("todo not found")

type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

// ListByOwner returns all todos owned by the given user.
func (s *TodoService) ListByOwner(ownerID uint) ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.db.Where("owner_id = ?", ownerID).Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// GetForOwner returns the todo with the given id if the user owns it.
func (s *TodoService) GetForOwner(id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to fetch todo: %w", err)
	}
	return &todo, nil
}

// Create persists a new todo owned by the given user.
func (s *TodoService) Create(ownerID uint, req *dto.TodoRequest) (*models.Todo, error) {
	todo := models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

// Update fully replaces the mutable fields of a todo the user owns.
func (s *TodoService) Update(id, ownerID uint, req *dto.TodoRequest) error {
	todo, err := s.GetForOwner(id, ownerID)
	if err != nil {
		return err
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Priority = req.Priority
	todo.Complete = req.Complete

	if err := s.db.Save(todo).Error; err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

// Delete removes a todo the user owns.
func (s *TodoService) Delete(id, ownerID uint) error {
	todo, err := s.GetForOwner(id, ownerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(todo).Error; err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// ListAll returns every todo regardless of owner. Admin only.
func (s *TodoService) ListAll() ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.db.Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// DeleteAny removes a todo by id regardless of owner. Admin only.
func (s *TodoService) DeleteAny(id uint) error {
	var todo models.Todo
	if err := s.db.First(&todo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to fetch todo: %w", err)
	}
	if err := s.db.Delete(&todo).Error; err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
