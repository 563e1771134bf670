package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the uuid primary key and the created_on/updated_on stamps
// shared by all persisted entities. updated_on stays nil until the first update.
type BaseModel struct {
	ID        uuid.UUID  `json:"id" xml:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedOn time.Time  `json:"created_on" xml:"created-on" gorm:"not null"`
	UpdatedOn *time.Time `json:"updated_on,omitempty" xml:"updated-on,omitempty"`
}

// BeforeCreate sets the UUID if not already set and stamps created_on
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedOn = time.Now().UTC()
	return nil
}

// BeforeUpdate stamps updated_on
func (base *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now().UTC()
	base.UpdatedOn = &now
	return nil
}

// Updated reports whether the record was ever updated after creation
func (base *BaseModel) Updated() bool {
	return base.UpdatedOn != nil
}
