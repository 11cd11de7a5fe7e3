package models

import "time"

type Badge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID           uint       `gorm:"not null;index" json:"userId"`
	BadgeName        string     `gorm:"size:100" json:"badgeName"`
	BadgeDescription string     `json:"badgeDescription"`
	AwardedDate      *time.Time `gorm:"type:date" json:"awardedDate"`
	AwardedBy        *uint      `json:"awardedBy,omitempty"`
}
