package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	LoginID  string `gorm:"uniqueIndex;size:50;not null" json:"loginId"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `json:"-"`
	FullName string `gorm:"size:255;not null" json:"fullName"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:50;default:EMPLOYEE" json:"role"`

	Department  string `gorm:"size:100" json:"department"`
	JobPosition string `gorm:"size:100" json:"jobPosition"`
	JobTitle    string `gorm:"size:100" json:"jobTitle"`
	ManagerID   *uint  `json:"managerId,omitempty"`

	EmploymentType string `gorm:"size:50" json:"employmentType"` // Full-time, Part-time
	ContractType   string `gorm:"size:50" json:"contractType"`   // Permanent, Contract
	WorkAddress    string `gorm:"size:255" json:"workAddress"`
	WorkLocation   string `gorm:"size:100" json:"workLocation"`
	TimeZone       string `gorm:"size:50" json:"timeZone"`
	WageType       string `gorm:"size:50" json:"wageType"` // Fixed Wage, Hourly
	Wage           float64 `json:"wage"`
	WorkingHours   string `gorm:"size:50" json:"workingHours"`
	ShiftTime      string `gorm:"size:100" json:"shiftTime"`

	DateOfJoining *time.Time `gorm:"type:date" json:"dateOfJoining"`
	DateOfBirth   *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Gender        string     `gorm:"size:20" json:"gender"`
	Nationality   string     `gorm:"size:100" json:"nationality"`

	EmergencyContactName     string `gorm:"size:255" json:"emergencyContactName"`
	EmergencyContactRelation string `gorm:"size:100" json:"emergencyContactRelation"`
	EmergencyContactPhone    string `gorm:"size:20" json:"emergencyContactPhone"`

	Avatar      string  `json:"avatar"`
	BasicSalary float64 `json:"basicSalary"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Leaves            []Leave            `gorm:"foreignKey:UserID" json:"leaves,omitempty"`
	Payslips          []Payslip          `gorm:"foreignKey:UserID" json:"payslips,omitempty"`
	Attendances       []Attendance       `gorm:"foreignKey:UserID" json:"attendances,omitempty"`
	SalaryAdjustments []SalaryAdjustment `gorm:"foreignKey:UserID" json:"salaryAdjustments,omitempty"`
}
