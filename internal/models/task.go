package models

import (
	"time"
)

type Task struct {
	ID           string       `gorm:"type:varchar(36);primarykey" json:"id"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Category     TaskCategory `gorm:"type:varchar(50);not null;index" json:"category"`
	Budget       float64      `gorm:"not null" json:"budget"`
	Deadline     time.Time    `gorm:"not null;index" json:"deadline"`
	CreatorUID   string       `gorm:"type:varchar(128);not null;index" json:"creatorUid"`
	CreatorEmail string       `gorm:"type:varchar(255);not null;index" json:"creatorEmail"`
	CreatorName  string       `gorm:"type:varchar(255)" json:"creatorName"`
	CreatedAt    time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Relations
	Bids []Bid `gorm:"foreignKey:TaskID" json:"bids,omitempty"`
}
