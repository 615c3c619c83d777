package repository

import (
	"github.com/gigconnect/marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormBidRepository is a GORM implementation of BidRepository
type GormBidRepository struct {
	db *gorm.DB
}

// NewBidRepository creates a new BidRepository
func NewBidRepository(db *gorm.DB) BidRepository {
	return &GormBidRepository{db: db}
}

// Create persists a new bid
func (r *GormBidRepository) Create(bid *models.Bid) error {
	return r.db.Create(bid).Error
}

// FindByTaskAndBidder finds the bid a user placed on a task, if any
func (r *GormBidRepository) FindByTaskAndBidder(taskID, bidderUID string) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.Where("task_id = ? AND bidder_uid = ?", taskID, bidderUID).
		First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

// ListByTask retrieves all bids for a task in the order they were received
func (r *GormBidRepository) ListByTask(taskID string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.Where("task_id = ?", taskID).
		Order("bid_placed_at ASC, id ASC").
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// ListByBidderEmail retrieves every bid placed by a user, oldest first
func (r *GormBidRepository) ListByBidderEmail(email string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.Where("bidder_email = ?", email).
		Order("bid_placed_at ASC, id ASC").
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}
