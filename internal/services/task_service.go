package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gigconnect/marketplace-api/internal/auth"
	"github.com/gigconnect/marketplace-api/internal/models"
	"github.com/gigconnect/marketplace-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotTaskCreator      = errors.New("only the task creator can perform this action")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryInvalid     = errors.New("category must be one of the known categories")
	ErrBudgetNegative      = errors.New("budget cannot be negative")
	ErrDeadlineRequired    = errors.New("deadline is required")
)

// IsValidationError reports whether err is one of the field validation
// failures, so handlers can map them to a 400 without listing each one.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrTitleRequired,
		ErrDescriptionRequired,
		ErrCategoryInvalid,
		ErrBudgetNegative,
		ErrDeadlineRequired,
		ErrBidAmountInvalid,
		ErrProposedDeadlineRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskFields carries the mutable task fields. Creation and update share it
// because they validate identically.
type TaskFields struct {
	Title       string
	Description string
	Category    models.TaskCategory
	Budget      float64
	Deadline    time.Time
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	Category *models.TaskCategory
	Page     int
	PageSize int
}

// ListTasks returns tasks in insertion order together with the total count.
// A page past the end of the data yields an empty slice, not an error.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		Category: input.Category,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// LatestTasks returns the tasks whose deadlines are soonest
func (s *TaskService) LatestTasks(limit int) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByDeadline(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasksByCreator returns every task posted by the given creator
func (s *TaskService) ListTasksByCreator(creatorEmail string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByCreatorEmail(creatorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by creator: %w", err)
	}
	return tasks, nil
}

// CreateTask validates the fields and persists a new task on behalf of the
// authenticated creator.
func (s *TaskService) CreateTask(fields TaskFields, creator auth.Identity) (*models.Task, error) {
	if err := validateTaskFields(fields); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(fields.Title),
		Description:  strings.TrimSpace(fields.Description),
		Category:     fields.Category,
		Budget:       fields.Budget,
		Deadline:     fields.Deadline,
		CreatorUID:   creator.UID,
		CreatorEmail: creator.Email,
		CreatorName:  creator.Name,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces the mutable fields of a task. The write is a single
// conditional UPDATE keyed on (id, creator_uid); a miss is disambiguated
// into not-found versus not-the-creator afterwards.
func (s *TaskService) UpdateTask(taskID string, fields TaskFields, requester auth.Identity) (*models.Task, error) {
	if err := validateTaskFields(fields); err != nil {
		return nil, err
	}

	affected, err := s.taskRepo.UpdateOwned(taskID, requester.UID, map[string]interface{}{
		"title":       strings.TrimSpace(fields.Title),
		"description": strings.TrimSpace(fields.Description),
		"category":    fields.Category,
		"budget":      fields.Budget,
		"deadline":    fields.Deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if affected == 0 {
		task, err := s.taskRepo.FindByID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTaskNotFound
			}
			return nil, fmt.Errorf("failed to find task: %w", err)
		}
		if task.CreatorUID != requester.UID {
			return nil, ErrNotTaskCreator
		}
		// The conditional write matched but changed nothing.
		return task, nil
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}

// DeleteTask deletes a task and all of its bids if the requester is the
// creator.
func (s *TaskService) DeleteTask(taskID string, requester auth.Identity) error {
	affected, err := s.taskRepo.DeleteOwned(taskID, requester.UID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if affected == 0 {
		if _, err := s.taskRepo.FindByID(taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to find task: %w", err)
		}
		return ErrNotTaskCreator
	}

	return nil
}

// validateTaskFields applies the field-level checks shared by create and
// update.
func validateTaskFields(fields TaskFields) error {
	if strings.TrimSpace(fields.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(fields.Description) == "" {
		return ErrDescriptionRequired
	}
	if !models.ValidCategory(fields.Category) {
		return ErrCategoryInvalid
	}
	if fields.Budget < 0 {
		return ErrBudgetNegative
	}
	if fields.Deadline.IsZero() {
		return ErrDeadlineRequired
	}
	return nil
}
