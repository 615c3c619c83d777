package dto

import (
	"time"

	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gigconnect/marketplace-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     models.TaskCategory `json:"category"`
	Budget       float64             `json:"budget"`
	Deadline     string              `json:"deadline"`
	CreatorUID   string              `json:"creatorUid"`
	CreatorEmail string              `json:"creatorEmail"`
	CreatorName  string              `json:"creatorName"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks       []TaskDTO `json:"tasks"`
	TotalTasks  int64     `json:"totalTasks"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Category:     task.Category,
		Budget:       task.Budget,
		Deadline:     task.Deadline.Format(constants.DateLayout),
		CreatorUID:   task.CreatorUID,
		CreatorEmail: task.CreatorEmail,
		CreatorName:  task.CreatorName,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, currentPage, pageSize int, totalTasks int64) TaskListResponse {
	totalPages := int(totalTasks) / pageSize
	if int(totalTasks)%pageSize > 0 {
		totalPages++
	}

	return TaskListResponse{
		Tasks:       ToTaskDTOs(tasks),
		TotalTasks:  totalTasks,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}
}
