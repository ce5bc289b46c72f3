package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// ValidReviewStatus reports whether s is a status an admin may set.
// Petitions are created as pending and never return there via review.
func ValidReviewStatus(s string) bool {
	return s == StatusVerified || s == StatusRejected
}

type Petition struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	FullName           string    `json:"fullName"`
	CollegeName        string    `json:"collegeName"`
	RollNumber         string    `json:"rollNumber"`
	PhoneNumber        string    `json:"phoneNumber"`
	Email              string    `json:"email"`
	ProblemDescription string    `json:"problemDescription"`
	ProfileURL         string    `json:"profileUrl"`
	SignatureURL       string    `json:"signatureUrl"`
	AadharURL          string    `json:"aadharUrl"`
	Status             string    `gorm:"index;default:pending" json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (p *Petition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
