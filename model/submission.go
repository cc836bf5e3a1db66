package model

import "time"

// Submission is a completed dossier handed to the reviewer.
type Submission struct {
	ID                string    `json:"id"`
	RequesterID       int64     `json:"requesterID"`
	RequesterUsername string    `json:"requesterUsername,omitempty"`
	Language          Language  `json:"language"`
	Summary           string    `json:"summary"`
	MainPhotoID       string    `json:"mainPhotoID"`
	SpousePhotoID     string    `json:"spousePhotoID,omitempty"`
	ChildPhotoIDs     []string  `json:"childPhotoIDs,omitempty"`
	PaymentPhotoID    string    `json:"paymentPhotoID"`
	Approved          bool      `json:"approved"`
	CreatedAt         time.Time `json:"createdAt"`
	ApprovedAt        time.Time `json:"approvedAt,omitempty"`
}
