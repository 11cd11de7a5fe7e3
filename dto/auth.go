package dto

import "time"

// LoginRequest is the login-id + password credential pair
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest registers a new employee account
type SignupRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type SignupResponse struct {
	EmployeeID   uint   `json:"employeeId"`
	LoginID      string `json:"loginId"`
	TempPassword string `json:"tempPassword"`
	Token        string `json:"token"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateProfileRequest carries the own-account fields a user may edit
type UpdateProfileRequest struct {
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID            uint       `json:"id"`
	LoginID       string     `json:"loginId"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	Department    string     `json:"department"`
	JobPosition   string     `json:"jobPosition"`
	JobTitle      string     `json:"jobTitle"`
	Avatar        string     `json:"avatar,omitempty"`
	BasicSalary   float64    `json:"basicSalary,omitempty"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
