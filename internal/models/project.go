package models

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a construction project for a client.
type Project struct {
	Base
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	ClientID  uint          `gorm:"not null;index" json:"client_id"`
	Name      string        `gorm:"not null" json:"name"`
	Reference string        `json:"reference"`
	Address   string        `json:"address"`
	Status    ProjectStatus `gorm:"not null;default:planned" json:"status"`
	Currency  string        `gorm:"not null;default:USD" json:"currency"`
	StartDate *time.Time    `json:"start_date,omitempty"`
	EndDate   *time.Time    `json:"end_date,omitempty"`

	// Relationships
	Client    Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ItemLines []ItemLine `gorm:"foreignKey:ProjectID" json:"item_lines,omitempty"`
}
