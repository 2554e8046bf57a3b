package service

import (
	"context"
	"errors"

	"github.com/taskhub/todo-service/internal/models"
	"github.com/taskhub/todo-service/internal/repository"
)

// TodoInput carries the mutable fields of a todo item.
type TodoInput struct {
	Title       string
	Description string
	Priority    int
	Completed   bool
}

// TodoService exposes owner-scoped CRUD for todo items. Every operation
// takes the authenticated owner's id and never touches another user's rows;
// a todo owned by someone else is indistinguishable from a missing one.
type TodoService interface {
	List(ctx context.Context, ownerID int64) ([]models.Todo, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Todo, error)
	Create(ctx context.Context, ownerID int64, input TodoInput) (*models.Todo, error)
	Update(ctx context.Context, id, ownerID int64, input TodoInput) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

func (s *todoService) List(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	return s.todoRepo.ListByOwner(ctx, ownerID)
}

func (s *todoService) Get(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Create(ctx context.Context, ownerID int64, input TodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		OwnerID:     ownerID,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, id, ownerID int64, input TodoInput) error {
	todo := &models.Todo{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		OwnerID:     ownerID,
	}
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *todoService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.todoRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
