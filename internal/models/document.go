package models

// Document represents project document metadata. The file bytes live in
// external storage; StorageKey is the opaque reference handed to clients.
type Document struct {
	Base
	ProjectID    uint   `gorm:"not null;index" json:"project_id"`
	UploadedByID uint   `gorm:"not null" json:"uploaded_by_id"`
	Name         string `gorm:"not null" json:"name"`
	StorageKey   string `gorm:"uniqueIndex;not null" json:"storage_key"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
}
