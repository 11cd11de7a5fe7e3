package models

import "time"

type Certification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID              uint       `gorm:"not null;index" json:"userId"`
	CertificationName   string     `gorm:"size:255" json:"certificationName"`
	IssuingOrganization string     `gorm:"size:255" json:"issuingOrganization"`
	IssueDate           *time.Time `gorm:"type:date" json:"issueDate"`
	ExpirationDate      *time.Time `gorm:"type:date" json:"expirationDate"`
	CredentialID        string     `gorm:"size:100" json:"credentialId"`
	CredentialURL       string     `gorm:"size:500" json:"credentialUrl"`
}
