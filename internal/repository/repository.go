package repository

import (
	"github.com/gigconnect/marketplace-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// ListByCreatorEmail retrieves all tasks posted by a creator, oldest first
	ListByCreatorEmail(email string) ([]models.Task, error)

	// ListByDeadline retrieves the tasks with the soonest deadlines
	ListByDeadline(limit int) ([]models.Task, error)

	// UpdateOwned applies fields to the task in a single conditional write
	// keyed on (id, creator_uid) and reports the rows affected. Zero rows
	// means the task is absent or the requester is not the creator.
	UpdateOwned(id, creatorUID string, fields map[string]interface{}) (int64, error)

	// DeleteOwned deletes the task with the same ownership condition and
	// cascades to its bids within one transaction.
	DeleteOwned(id, creatorUID string) (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Category *models.TaskCategory
	Page     int
	PageSize int
}

// BidRepository defines the interface for bid data access
type BidRepository interface {
	// Create persists a new bid. The unique index on (task_id, bidder_uid)
	// makes concurrent duplicates fail with gorm.ErrDuplicatedKey.
	Create(bid *models.Bid) error

	// FindByTaskAndBidder finds the bid a user placed on a task, if any
	FindByTaskAndBidder(taskID, bidderUID string) (*models.Bid, error)

	// ListByTask retrieves all bids for a task, oldest first
	ListByTask(taskID string) ([]models.Bid, error)

	// ListByBidderEmail retrieves every bid placed by a user, oldest first
	ListByBidderEmail(email string) ([]models.Bid, error)
}
