package models

import (
	"github.com/google/uuid"
)

// User represents a person signed in to the application. Every user belongs to exactly one company.
type User struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" xml:"company-id" gorm:"type:uuid;not null;index" validate:"required"`
	Username    string    `json:"username" xml:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	DisplayName string    `json:"display_name" xml:"display-name" gorm:"size:100" validate:"max=100"`
	Email       string    `json:"email" xml:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	IsAdmin     bool      `json:"is_admin" xml:"is-admin" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
