package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhub/todo-service/internal/models"
	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data operations.
// Every read and write is filtered by the owning user's id.
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository instance.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list todos for owner %d: %w", ownerID, err)
	}
	return todos, nil
}

func (r *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo %d for owner %d: %w", id, ownerID, err)
	}
	return &todo, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	result := r.db.WithContext(ctx).Model(&models.Todo{}).
		Where("id = ? AND owner_id = ?", todo.ID, todo.OwnerID).
		Updates(map[string]interface{}{
			"title":       todo.Title,
			"description": todo.Description,
			"priority":    todo.Priority,
			"completed":   todo.Completed,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update todo %d: %w", todo.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *todoRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Todo{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
