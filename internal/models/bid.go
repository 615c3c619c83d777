package models

import (
	"time"
)

// Bid is an offer by a non-creator user to perform a task. The composite
// unique index on (task_id, bidder_uid) is what enforces one bid per user
// per task under concurrent submissions.
type Bid struct {
	ID               string    `gorm:"type:varchar(36);primarykey" json:"id"`
	TaskID           string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_bids_task_bidder" json:"taskId"`
	BidderUID        string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_bids_task_bidder" json:"bidderUid"`
	BidderEmail      string    `gorm:"type:varchar(255);not null;index" json:"bidderEmail"`
	BidderName       string    `gorm:"type:varchar(255)" json:"bidderName"`
	BidAmount        float64   `gorm:"not null" json:"bidAmount"`
	ProposedDeadline time.Time `gorm:"not null" json:"proposedDeadline"`
	ProposalText     string    `gorm:"type:text" json:"proposalText,omitempty"`
	BidPlacedAt      time.Time `gorm:"not null;index" json:"bidPlacedAt"`
}
