package services

import (
	"errors"
	"fmt"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
	"workzen/services/logger"
	"workzen/services/notification"
	"workzen/utils"

	"gorm.io/gorm"
)

type LeaveService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
}

type LeaveServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
}

func NewLeaveService(opts LeaveServiceOptions) *LeaveService {
	return &LeaveService{
		db:       opts.DB,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// leaveDays counts the inclusive day span of a leave period.
func leaveDays(start, end time.Time) int {
	return int(utils.DateOnly(end).Sub(utils.DateOnly(start)).Hours()/24) + 1
}

// ensureBalance fetches the year's balance row for the leave type, creating it
// from the default entitlement table when missing.
func ensureBalance(tx *gorm.DB, userID uint, leaveType string, year int) (*models.LeaveBalance, error) {
	var balance models.LeaveBalance
	err := tx.Where("user_id = ? AND leave_type = ? AND year = ?", userID, leaveType, year).
		First(&balance).Error
	if err == nil {
		return &balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	days, ok := constants.DefaultLeaveDays[leaveType]
	if !ok {
		days = constants.DefaultLeaveDaysFallback
	}

	balance = models.LeaveBalance{
		UserID:        userID,
		LeaveType:     leaveType,
		Year:          year,
		TotalDays:     days,
		UsedDays:      0,
		RemainingDays: days,
	}
	if err := tx.Create(&balance).Error; err != nil {
		return nil, err
	}
	return &balance, nil
}

// Apply validates the period, lazily creates the balance row, checks the
// remaining days and inserts a Pending request. The sufficiency check and the
// insert share one transaction so concurrent applications cannot both pass.
func (s *LeaveService) Apply(userID uint, leaveType string, start, end time.Time, reason string, now time.Time) (*models.Leave, error) {
	if end.Before(start) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "End date must not be before start date", apperrors.ErrInvalidLeavePeriod)
	}

	days := leaveDays(start, end)
	year := now.Year()

	var leave models.Leave
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A balance row created here rides the same transaction, so a
		// rejected application leaves no balance row behind.
		balance, err := ensureBalance(tx, userID, leaveType, year)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to load leave balance", err)
		}

		if balance.RemainingDays < days {
			return apperrors.NewAppError(
				apperrors.ErrCodeInsufficientBalance,
				fmt.Sprintf("Insufficient leave balance. Available: %d days, Requested: %d days", balance.RemainingDays, days),
				apperrors.ErrInsufficientBalance,
			)
		}

		leave = models.Leave{
			UserID:       userID,
			LeaveType:    leaveType,
			StartDate:    utils.DateOnly(start),
			EndDate:      utils.DateOnly(end),
			Reason:       reason,
			Status:       constants.LeaveStatusPending,
			NumberOfDays: days,
		}
		return tx.Create(&leave).Error
	})
	if err != nil {
		return nil, err
	}

	return &leave, nil
}

// Approve marks the request Approved, records the approver and charges its day
// count against the matching balance row. The balance mutation is a single
// guarded UPDATE inside the same transaction, so concurrent approvals cannot
// double-spend. A missing balance row is a no-op, matching application-time
// lazy creation.
func (s *LeaveService) Approve(leaveID uint, approverID uint, now time.Time) (*models.Leave, error) {
	var leave models.Leave

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&leave, leaveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Leave request not found", apperrors.ErrLeaveNotFound)
			}
			return err
		}

		if leave.Status != constants.LeaveStatusPending {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Leave request already resolved", apperrors.ErrLeaveAlreadyResolved)
		}

		leave.Status = constants.LeaveStatusApproved
		leave.ApprovedBy = &approverID
		if err := tx.Save(&leave).Error; err != nil {
			return err
		}

		return tx.Model(&models.LeaveBalance{}).
			Where("user_id = ? AND leave_type = ? AND year = ?", leave.UserID, leave.LeaveType, now.Year()).
			Updates(map[string]interface{}{
				"used_days":      gorm.Expr("used_days + ?", leave.NumberOfDays),
				"remaining_days": gorm.Expr("total_days - used_days - ?", leave.NumberOfDays),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(&leave)
	return &leave, nil
}

// Reject marks the request Rejected and records the approver; balances are
// never touched.
func (s *LeaveService) Reject(leaveID uint, approverID uint) (*models.Leave, error) {
	var leave models.Leave

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&leave, leaveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Leave request not found", apperrors.ErrLeaveNotFound)
			}
			return err
		}

		if leave.Status != constants.LeaveStatusPending {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Leave request already resolved", apperrors.ErrLeaveAlreadyResolved)
		}

		leave.Status = constants.LeaveStatusRejected
		leave.ApprovedBy = &approverID
		return tx.Save(&leave).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(&leave)
	return &leave, nil
}

func (s *LeaveService) notifyDecision(leave *models.Leave) {
	message := notification.NewLeaveDecisionMessage(leave.UserID, leave.LeaveType, leave.NumberOfDays, leave.Status).Build()

	row := models.Notification{
		UserID:  leave.UserID,
		Message: message,
	}
	if err := s.db.Create(&row).Error; err != nil && s.logger != nil {
		s.logger.Error("failed to store notification for leave %d: %v", leave.ID, err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendMessage(message); err != nil && s.logger != nil {
			s.logger.Error("failed to broadcast notification for leave %d: %v", leave.ID, err)
		}
	}
}

// UserLeaves lists a user's requests, newest first, with the year's balances.
func (s *LeaveService) UserLeaves(userID uint, year int) ([]models.Leave, []models.LeaveBalance, error) {
	var leaves []models.Leave
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		return nil, nil, err
	}

	var balances []models.LeaveBalance
	if err := s.db.Where("user_id = ? AND year = ?", userID, year).
		Find(&balances).Error; err != nil {
		return nil, nil, err
	}

	return leaves, balances, nil
}

// PendingLeaves lists all Pending requests for the approval queue.
func (s *LeaveService) PendingLeaves() ([]models.Leave, error) {
	var leaves []models.Leave
	if err := s.db.Preload("User").
		Where("status = ?", constants.LeaveStatusPending).
		Order("created_at ASC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

// InitBalancesForAll creates the signup leave balances for every active
// employee that is missing one for the year. Returns how many employees were
// seen and how many rows were created.
func (s *LeaveService) InitBalancesForAll(year int) (int, int, error) {
	var employees []models.User
	if err := s.db.Where("role = ? AND is_active = ?", constants.RoleEmployee, true).
		Find(&employees).Error; err != nil {
		return 0, 0, err
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, employee := range employees {
			for _, leaveType := range constants.SignupLeaveTypes {
				var existing models.LeaveBalance
				err := tx.Where("user_id = ? AND leave_type = ? AND year = ?", employee.ID, leaveType, year).
					First(&existing).Error
				if err == nil {
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}

				days := constants.DefaultLeaveDays[leaveType]
				balance := models.LeaveBalance{
					UserID:        employee.ID,
					LeaveType:     leaveType,
					Year:          year,
					TotalDays:     days,
					UsedDays:      0,
					RemainingDays: days,
				}
				if err := tx.Create(&balance).Error; err != nil {
					return err
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	if s.logger != nil {
		s.logger.Info("initialized %d leave balance rows for %d employees (year %d)", created, len(employees), year)
	}
	return len(employees), created, nil
}
