package repository

import (
	"github.com/gigconnect/marketplace-api/internal/database"
	"github.com/gigconnect/marketplace-api/internal/models"
	"github.com/gigconnect/marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with filtering and pagination. Tasks come back in
// insertion order (created_at, with id as a deterministic tiebreak).
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at ASC, id ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListByCreatorEmail retrieves all tasks posted by a creator, oldest first
func (r *GormTaskRepository) ListByCreatorEmail(email string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("creator_email = ?", email).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByDeadline retrieves the tasks with the soonest deadlines
func (r *GormTaskRepository) ListByDeadline(limit int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("deadline ASC, id ASC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned applies fields with a single conditional write keyed on
// (id, creator_uid), so there is no gap between the ownership check and
// the mutation.
func (r *GormTaskRepository) UpdateOwned(id, creatorUID string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Task{}).
		Where("id = ? AND creator_uid = ?", id, creatorUID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteOwned deletes the task under the same ownership condition and
// cascades to its bids. The task row goes first: if the conditional delete
// matches nothing, the transaction commits without touching any bids.
func (r *GormTaskRepository) DeleteOwned(id, creatorUID string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND creator_uid = ?", id, creatorUID).
			Delete(&models.Task{})
		if res.Error != nil {
			return res.Error
		}

		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}

		return tx.Where("task_id = ?", id).Delete(&models.Bid{}).Error
	})
	return affected, err
}
