package models

// Note represents a free-form project note.
type Note struct {
	Base
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Title     string `gorm:"not null" json:"title"`
	Body      string `json:"body"`
	Pinned    bool   `json:"pinned"`
}
