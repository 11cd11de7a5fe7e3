package validator

import (
	"regexp"
	"time"

	"workzen/constants"
	"workzen/dto"
	"workzen/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateSignup checks the fields Gin binding tags cannot express.
func ValidateSignup(req *dto.SignupRequest) error {
	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if req.Phone != "" && !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid phone number", nil)
	}

	if req.Role != "" && !isValidRole(req.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role: "+req.Role, nil)
	}

	return nil
}

// ValidateEmployee checks a full employee-creation payload.
func ValidateEmployee(req *dto.CreateEmployeeRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "First name and last name are required", nil)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if req.Phone != "" && !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid phone number", nil)
	}

	if req.Role != "" && !isValidRole(req.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role: "+req.Role, nil)
	}

	if req.BasicSalary < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Basic salary cannot be negative", nil)
	}

	for _, field := range []struct{ name, value string }{
		{"dateOfBirth", req.DateOfBirth},
		{"dateOfJoining", req.DateOfJoining},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", field.value); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date for "+field.name+", expected YYYY-MM-DD", err)
		}
	}

	return nil
}

// ValidateLeaveType rejects leave types outside the configured set.
func ValidateLeaveType(leaveType string) error {
	if _, ok := constants.DefaultLeaveDays[leaveType]; !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid leave type: "+leaveType, nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func isValidRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleHROfficer, constants.RolePayrollOfficer, constants.RoleEmployee:
		return true
	}
	return false
}
