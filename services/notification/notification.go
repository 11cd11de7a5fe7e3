package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// LeaveDecisionMessage builds the broadcast text for a resolved leave request.
type LeaveDecisionMessage struct {
	userID    uint
	leaveType string
	days      int
	status    string
}

func NewLeaveDecisionMessage(userID uint, leaveType string, days int, status string) *LeaveDecisionMessage {
	return &LeaveDecisionMessage{
		userID:    userID,
		leaveType: leaveType,
		days:      days,
		status:    status,
	}
}

func (b *LeaveDecisionMessage) Build() string {
	return fmt.Sprintf("🔔 Leave request (%s, %d days) for user %d has been %s.", b.leaveType, b.days, b.userID, b.status)
}
