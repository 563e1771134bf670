package models

import (
	"slices"

	"github.com/google/uuid"
)

// Project represents a collaboration project shared between companies
type Project struct {
	BaseModel
	Name        string    `json:"name" xml:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" xml:"description" gorm:"type:text"`
	CreatedByID uuid.UUID `json:"created_by_id" xml:"created-by-id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedBy *User     `json:"created_by,omitempty" xml:"-" gorm:"foreignKey:CreatedByID"`
	Companies []Company `json:"companies,omitempty" xml:"-" gorm:"many2many:project_companies"`
	Users     []User    `json:"users,omitempty" xml:"-" gorm:"many2many:project_users"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// CompanyIDs returns the ids of the associated companies
func (p *Project) CompanyIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Companies))
	for _, company := range p.Companies {
		ids = append(ids, company.ID)
	}
	return ids
}

// HasCompany reports whether the company is explicitly associated with the project
func (p *Project) HasCompany(companyID uuid.UUID) bool {
	return slices.Contains(p.CompanyIDs(), companyID)
}

// HasUser reports whether the user is a member of the project
func (p *Project) HasUser(userID uuid.UUID) bool {
	for _, user := range p.Users {
		if user.ID == userID {
			return true
		}
	}
	return false
}
