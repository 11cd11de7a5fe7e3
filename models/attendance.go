package models

import "time"

type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID         uint       `gorm:"not null;uniqueIndex:uq_user_date" json:"userId"`
	AttendanceDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_user_date" json:"attendanceDate"`
	CheckIn        *time.Time `json:"checkIn"`
	CheckOut       *time.Time `json:"checkOut"`
	Status         string     `gorm:"size:50" json:"status"` // Present, Absent, Late
	WorkingHours   float64    `json:"workingHours"`
	Remarks        string     `json:"remarks"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
