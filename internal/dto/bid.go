package dto

import (
	"time"

	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gigconnect/marketplace-api/internal/models"
)

// BidDTO represents a bid in API responses
type BidDTO struct {
	ID               string    `json:"id"`
	TaskID           string    `json:"taskId"`
	BidderUID        string    `json:"bidderUid"`
	BidderEmail      string    `json:"bidderEmail"`
	BidderName       string    `json:"bidderName"`
	BidAmount        float64   `json:"bidAmount"`
	ProposedDeadline string    `json:"proposedDeadline"`
	ProposalText     string    `json:"proposalText,omitempty"`
	BidPlacedAt      time.Time `json:"bidPlacedAt"`
}

// ToBidDTO converts a Bid model to BidDTO
func ToBidDTO(bid models.Bid) BidDTO {
	return BidDTO{
		ID:               bid.ID,
		TaskID:           bid.TaskID,
		BidderUID:        bid.BidderUID,
		BidderEmail:      bid.BidderEmail,
		BidderName:       bid.BidderName,
		BidAmount:        bid.BidAmount,
		ProposedDeadline: bid.ProposedDeadline.Format(constants.DateLayout),
		ProposalText:     bid.ProposalText,
		BidPlacedAt:      bid.BidPlacedAt,
	}
}

// ToBidDTOs converts a slice of Bid models
func ToBidDTOs(bids []models.Bid) []BidDTO {
	items := make([]BidDTO, len(bids))
	for i, bid := range bids {
		items[i] = ToBidDTO(bid)
	}
	return items
}
