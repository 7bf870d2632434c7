package models

import "time"

// InquiryType classifies what kind of engagement a consultation asks for.
type InquiryType string

const (
	InquiryAdvisory       InquiryType = "advisory"
	InquiryInterim        InquiryType = "interim"
	InquiryTransformation InquiryType = "transformation"
	InquiryBoard          InquiryType = "board"
	InquiryConsulting     InquiryType = "consulting"
	InquiryOther          InquiryType = "other"
)

// InquiryTypes lists the accepted inquiry types in display order.
var InquiryTypes = []InquiryType{
	InquiryAdvisory,
	InquiryInterim,
	InquiryTransformation,
	InquiryBoard,
	InquiryConsulting,
	InquiryOther,
}

// Valid reports whether t is a known inquiry type.
func (t InquiryType) Valid() bool {
	for _, known := range InquiryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ConsultationStatus tracks administrative follow-up. Any status may follow any other.
type ConsultationStatus string

const (
	ConsultationStatusNew        ConsultationStatus = "new"
	ConsultationStatusContacted  ConsultationStatus = "contacted"
	ConsultationStatusInProgress ConsultationStatus = "in_progress"
	ConsultationStatusClosed     ConsultationStatus = "closed"
)

// ConsultationStatuses lists the accepted statuses.
var ConsultationStatuses = []ConsultationStatus{
	ConsultationStatusNew,
	ConsultationStatusContacted,
	ConsultationStatusInProgress,
	ConsultationStatusClosed,
}

// Valid reports whether s is a known status.
func (s ConsultationStatus) Valid() bool {
	for _, known := range ConsultationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ConsultationListLimit caps list and export queries.
const ConsultationListLimit = 100

// Consultation is the stored form submission.
type Consultation struct {
	ID          string             `bson:"_id" db:"id" json:"id"`
	Name        string             `bson:"name" db:"name" json:"name"`
	Email       string             `bson:"email" db:"email" json:"email"`
	Company     string             `bson:"company" db:"company" json:"company"`
	Title       string             `bson:"title" db:"title" json:"title"`
	InquiryType InquiryType        `bson:"inquiry_type" db:"inquiry_type" json:"inquiry_type"`
	Message     string             `bson:"message" db:"message" json:"message"`
	Status      ConsultationStatus `bson:"status" db:"status" json:"status"`
	SubmittedAt time.Time          `bson:"submitted_at" db:"submitted_at" json:"submitted_at"`
	ContactedAt *time.Time         `bson:"contacted_at,omitempty" db:"contacted_at" json:"contacted_at"`
	Notes       *string            `bson:"notes,omitempty" db:"notes" json:"notes"`
	Priority    *string            `bson:"priority,omitempty" db:"priority" json:"priority"`
}

// ConsultationFilter narrows list and export queries.
type ConsultationFilter struct {
	Status *ConsultationStatus
	Limit  int
}
