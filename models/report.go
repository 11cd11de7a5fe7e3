package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Report keeps a record of every generated report: who asked for it, the
// column headers and the raw row payload, so past exports can be re-rendered.
type Report struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GeneratedDate time.Time `gorm:"autoCreateTime" json:"generatedDate"`

	ReportType  string          `gorm:"size:50;index" json:"reportType"` // attendance, payroll, employee, leave, overtime, performance
	Headers     pq.StringArray  `gorm:"type:text[]" json:"headers"`
	ReportData  json.RawMessage `gorm:"type:jsonb" json:"reportData"`
	GeneratedBy *uint           `json:"generatedBy,omitempty"`
}
