package models

import "time"

type Payslip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID          uint      `gorm:"not null;uniqueIndex:uq_user_month" json:"userId"`
	PayrollMonth    time.Time `gorm:"type:date;not null;uniqueIndex:uq_user_month" json:"payrollMonth"`
	BasicSalary     float64   `json:"basicSalary"`
	HRA             float64   `json:"hra"`
	DA              float64   `json:"da"`
	GrossEarnings   float64   `json:"grossEarnings"`
	PF              float64   `json:"pf"`
	IncomeTax       float64   `json:"incomeTax"`
	ProfessionalTax float64   `json:"professionalTax"`
	NetSalary       float64   `json:"netSalary"`
	Status          string    `gorm:"size:50;default:Draft" json:"status"` // Draft, Processed
	ProcessedDate   *time.Time `json:"processedDate"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
