package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
	"workzen/services/logger"
	"workzen/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// GenerateLoginID builds the next login id for a name: 2-letter abbreviations
// of first and last name, the year, then a 4-digit serial derived from how
// many ids already share the prefix.
func (s *UserService) GenerateLoginID(firstName, lastName string, year int) (string, error) {
	prefix := utils.LoginIDPrefix(firstName, lastName, year)

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("login_id LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return utils.FormatLoginID(prefix, count+1), nil
}

type NewEmployee struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Role       string
	Department string

	JobPosition    string
	JobTitle       string
	EmploymentType string
	ContractType   string
	DateOfJoining  *time.Time
	DateOfBirth    *time.Time
	Gender         string
	Nationality    string
	WorkLocation   string
	WorkAddress    string
	TimeZone       string
	ShiftTime      string
	WorkingHours   string
	WageType       string
	Wage           float64
	BasicSalary    float64

	EmergencyContactName     string
	EmergencyContactRelation string
	EmergencyContactPhone    string
}

// CreateEmployee inserts a new user with a generated login id and temporary
// password, plus the default leave balances for the current year. The whole
// thing runs in one transaction.
func (s *UserService) CreateEmployee(in NewEmployee) (*models.User, string, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if firstName == "" || lastName == "" {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeRequiredField, "First name and last name are required", nil)
	}

	var existing models.User
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeConflict, "Email already exists", apperrors.ErrEmailExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to check email", err)
	}

	now := time.Now()
	loginID, err := s.GenerateLoginID(firstName, lastName, now.Year())
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to generate login id", err)
	}

	tempPassword, err := utils.GenerateTempPassword(utils.TempPasswordLength)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to generate temporary password", err)
	}

	hashed, err := HashPassword(tempPassword)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to hash password", err)
	}

	role := in.Role
	if role == "" {
		role = constants.RoleEmployee
	}

	joining := in.DateOfJoining
	if joining == nil {
		d := utils.DateOnly(now)
		joining = &d
	}

	user := models.User{
		LoginID:        loginID,
		Email:          in.Email,
		Password:       hashed,
		FullName:       fmt.Sprintf("%s %s", firstName, lastName),
		Phone:          in.Phone,
		Role:           role,
		Department:     in.Department,
		JobPosition:    in.JobPosition,
		JobTitle:       in.JobTitle,
		EmploymentType: in.EmploymentType,
		ContractType:   in.ContractType,
		DateOfJoining:  joining,
		DateOfBirth:    in.DateOfBirth,
		Gender:         in.Gender,
		Nationality:    in.Nationality,
		WorkLocation:   in.WorkLocation,
		WorkAddress:    in.WorkAddress,
		TimeZone:       in.TimeZone,
		ShiftTime:      in.ShiftTime,
		WorkingHours:   in.WorkingHours,
		WageType:       in.WageType,
		Wage:           in.Wage,
		BasicSalary:    in.BasicSalary,

		EmergencyContactName:     in.EmergencyContactName,
		EmergencyContactRelation: in.EmergencyContactRelation,
		EmergencyContactPhone:    in.EmergencyContactPhone,

		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		for _, leaveType := range constants.SignupLeaveTypes {
			days := constants.DefaultLeaveDays[leaveType]
			balance := models.LeaveBalance{
				UserID:        user.ID,
				LeaveType:     leaveType,
				Year:          now.Year(),
				TotalDays:     days,
				UsedDays:      0,
				RemainingDays: days,
			}
			if err := tx.Create(&balance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to create employee", err)
	}

	if s.logger != nil {
		s.logger.Info("created employee %s (%s)", user.LoginID, user.Email)
	}

	return &user, tempPassword, nil
}

// AdjustSalary appends a SalaryAdjustment row and moves the employee's basic
// salary to the new figure, in one transaction.
func (s *UserService) AdjustSalary(userID uint, newSalary float64, reason string, approverID uint) (*models.SalaryAdjustment, error) {
	var adjustment models.SalaryAdjustment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Employee not found", apperrors.ErrUserNotFound)
			}
			return err
		}

		approver := approverID
		adjustment = models.SalaryAdjustment{
			UserID:         userID,
			AdjustmentDate: utils.DateOnly(time.Now()),
			OldSalary:      user.BasicSalary,
			NewSalary:      newSalary,
			Reason:         reason,
			ApprovedBy:     &approver,
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("basic_salary", newSalary).Error
	})
	if err != nil {
		return nil, err
	}

	return &adjustment, nil
}

// Profile loads a user together with the history shown on the profile page.
func (s *UserService) Profile(userID uint) (*models.User, []models.SalaryAdjustment, []models.Badge, []models.Certification, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Employee not found", apperrors.ErrUserNotFound)
		}
		return nil, nil, nil, nil, err
	}

	var adjustments []models.SalaryAdjustment
	if err := s.db.Where("user_id = ?", userID).
		Order("adjustment_date DESC").
		Find(&adjustments).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	var badges []models.Badge
	if err := s.db.Where("user_id = ?", userID).Find(&badges).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	var certifications []models.Certification
	if err := s.db.Where("user_id = ?", userID).Find(&certifications).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	return &user, adjustments, badges, certifications, nil
}
