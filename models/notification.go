package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID  uint   `gorm:"not null;index" json:"userId"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
