package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gigconnect/marketplace-api/internal/auth"
	"github.com/gigconnect/marketplace-api/internal/models"
	"github.com/gigconnect/marketplace-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOwnTaskBid               = errors.New("cannot bid on your own task")
	ErrDuplicateBid             = errors.New("you have already bid on this task")
	ErrBidAmountInvalid         = errors.New("bid amount must be greater than zero")
	ErrProposedDeadlineRequired = errors.New("proposed deadline is required")
)

// BidService handles bid business logic. It consults the task repository
// read-only to validate task existence and ownership.
type BidService struct {
	bidRepo  repository.BidRepository
	taskRepo repository.TaskRepository
}

// NewBidService creates a new BidService
func NewBidService(bidRepo repository.BidRepository, taskRepo repository.TaskRepository) *BidService {
	return &BidService{
		bidRepo:  bidRepo,
		taskRepo: taskRepo,
	}
}

// SubmitBidInput represents input for submitting a bid
type SubmitBidInput struct {
	BidAmount        float64
	ProposedDeadline time.Time
	ProposalText     string
}

// SubmitBid places a bid on a task for the authenticated bidder. A
// (task, user) pair transitions from no-bid to bid-placed exactly once;
// there is no way back short of the task being deleted.
func (s *BidService) SubmitBid(taskID string, input SubmitBidInput, bidder auth.Identity) (*models.Bid, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.CreatorUID == bidder.UID {
		return nil, ErrOwnTaskBid
	}

	if _, err := s.bidRepo.FindByTaskAndBidder(taskID, bidder.UID); err == nil {
		return nil, ErrDuplicateBid
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing bid: %w", err)
	}

	if input.BidAmount <= 0 {
		return nil, ErrBidAmountInvalid
	}
	if input.ProposedDeadline.IsZero() {
		return nil, ErrProposedDeadlineRequired
	}

	bid := &models.Bid{
		ID:               uuid.NewString(),
		TaskID:           taskID,
		BidderUID:        bidder.UID,
		BidderEmail:      bidder.Email,
		BidderName:       bidder.Name,
		BidAmount:        input.BidAmount,
		ProposedDeadline: input.ProposedDeadline,
		ProposalText:     input.ProposalText,
		BidPlacedAt:      time.Now().UTC(),
	}

	// The pre-check above gives the friendly error on the common path; the
	// unique index on (task_id, bidder_uid) is what closes the race when
	// two submissions for the same pair arrive together.
	if err := s.bidRepo.Create(bid); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBid
		}
		return nil, fmt.Errorf("failed to create bid: %w", err)
	}

	return bid, nil
}

// ListBidsForTask returns the bids on a task in the order they were
// received.
func (s *BidService) ListBidsForTask(taskID string) ([]models.Bid, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	bids, err := s.bidRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

// ListBidsByBidder returns every bid the user has placed across all tasks
func (s *BidService) ListBidsByBidder(bidderEmail string) ([]models.Bid, error) {
	bids, err := s.bidRepo.ListByBidderEmail(bidderEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids by bidder: %w", err)
	}
	return bids, nil
}
