package models

import "time"

// MeetingStatus represents the state of a scheduled meeting.
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusHeld      MeetingStatus = "held"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting represents a project meeting.
type Meeting struct {
	Base
	ProjectID uint          `gorm:"not null;index" json:"project_id"`
	Title     string        `gorm:"not null" json:"title"`
	Agenda    string        `json:"agenda"`
	Location  string        `json:"location"`
	Attendees string        `json:"attendees"`
	Status    MeetingStatus `gorm:"not null;default:scheduled" json:"status"`
	StartTime time.Time     `gorm:"not null" json:"start_time"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
}
