package services

import (
	"errors"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
	"workzen/utils"

	"gorm.io/gorm"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// CheckIn creates today's attendance row with status Present. At most one row
// per (user, date); a second call the same day fails.
func (s *AttendanceService) CheckIn(userID uint, now time.Time) (*models.Attendance, error) {
	today := utils.DateOnly(now)

	var existing models.Attendance
	err := s.db.Where("user_id = ? AND attendance_date = ?", userID, today).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Already checked in today", apperrors.ErrAlreadyCheckedIn)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to look up attendance", err)
	}

	checkIn := now
	attendance := models.Attendance{
		UserID:         userID,
		AttendanceDate: today,
		CheckIn:        &checkIn,
		Status:         constants.AttendanceStatusPresent,
	}
	if err := s.db.Create(&attendance).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to create attendance", err)
	}

	return &attendance, nil
}

// CheckOut stamps the check-out time on today's row and derives working hours
// from the two timestamps.
func (s *AttendanceService) CheckOut(userID uint, now time.Time) (*models.Attendance, error) {
	today := utils.DateOnly(now)

	var attendance models.Attendance
	err := s.db.Where("user_id = ? AND attendance_date = ?", userID, today).First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "No check-in record found", apperrors.ErrNoCheckInFound)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to look up attendance", err)
	}

	checkOut := now
	attendance.CheckOut = &checkOut
	if attendance.CheckIn != nil {
		attendance.WorkingHours = checkOut.Sub(*attendance.CheckIn).Hours()
	}

	if err := s.db.Save(&attendance).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to update attendance", err)
	}

	return &attendance, nil
}

// RecentRecords lists attendance rows, newest first. userID 0 means all users.
func (s *AttendanceService) RecentRecords(userID uint, limit int) ([]models.Attendance, error) {
	query := s.db.Order("attendance_date DESC").Limit(limit)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Preload("User")
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
