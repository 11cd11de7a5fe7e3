package dto

// CreateEmployeeRequest is the admin/HR create-employee payload. Dates are
// YYYY-MM-DD strings.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`

	JobPosition    string  `json:"jobPosition"`
	JobTitle       string  `json:"jobTitle"`
	EmploymentType string  `json:"employmentType"`
	ContractType   string  `json:"contractType"`
	DateOfJoining  string  `json:"dateOfJoining"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Gender         string  `json:"gender"`
	Nationality    string  `json:"nationality"`
	WorkLocation   string  `json:"workLocation"`
	WorkAddress    string  `json:"workAddress"`
	TimeZone       string  `json:"timeZone"`
	ShiftTime      string  `json:"shiftTime"`
	WorkingHours   string  `json:"workingHours"`
	WageType       string  `json:"wageType"`
	Wage           float64 `json:"wage"`
	BasicSalary    float64 `json:"basicSalary"`

	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`
	EmergencyContactPhone    string `json:"emergencyContactPhone"`
}

type CreateEmployeeResponse struct {
	EmployeeID   uint   `json:"employeeId"`
	LoginID      string `json:"loginId"`
	TempPassword string `json:"tempPassword"`
}

// SalaryAdjustmentRequest records a salary change for an employee
type SalaryAdjustmentRequest struct {
	UserID    uint    `json:"userId" binding:"required"`
	NewSalary float64 `json:"newSalary" binding:"required"`
	Reason    string  `json:"reason"`
}
