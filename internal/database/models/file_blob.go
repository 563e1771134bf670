package models

import "time"

// FileBlob holds an uploaded file for the database storage backend
type FileBlob struct {
	Ref         string `gorm:"primaryKey;size:255"`
	ContentType string `gorm:"size:100;not null"`
	Size        int64  `gorm:"not null"`
	Data        []byte `gorm:"type:bytea;not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for FileBlob
func (FileBlob) TableName() string {
	return "file_blobs"
}
