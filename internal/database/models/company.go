package models

import (
	"fmt"
	"math"

	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/locale"

	"github.com/google/uuid"
)

// DefaultLogoURL is served for companies without an uploaded logo
const DefaultLogoURL = "/images/logo.gif"

// Company represents an organization node. The company without a parent
// (client_of_id IS NULL) is the owner company; every other company is one of its clients.
type Company struct {
	BaseModel
	ClientOfID      *uuid.UUID `json:"client_of_id,omitempty" xml:"client-of-id,omitempty" gorm:"type:uuid;index"`
	Name            string     `json:"name" xml:"name" gorm:"uniqueIndex;not null;size:100"`
	Email           string     `json:"email" xml:"email" gorm:"size:100"`
	Homepage        string     `json:"homepage" xml:"homepage" gorm:"size:100"`
	PhoneNumber     string     `json:"phone_number" xml:"phone-number" gorm:"size:30"`
	FaxNumber       string     `json:"fax_number" xml:"fax-number" gorm:"size:30"`
	Address         string     `json:"address" xml:"address" gorm:"size:100"`
	Address2        string     `json:"address2" xml:"address2" gorm:"size:100"`
	City            string     `json:"city" xml:"city" gorm:"size:50"`
	State           string     `json:"state" xml:"state" gorm:"size:50"`
	Zipcode         string     `json:"zipcode" xml:"zipcode" gorm:"size:30"`
	Country         string     `json:"country" xml:"country" gorm:"size:2"`
	Timezone        float64    `json:"timezone" xml:"timezone" gorm:"not null;default:0"`
	LogoFile        *string    `json:"-" xml:"-" gorm:"size:255"`
	HideWelcomeInfo bool       `json:"hide_welcome_info" xml:"hide-welcome-info" gorm:"not null;default:false"`
	CreatedByID     *uuid.UUID `json:"created_by_id,omitempty" xml:"created-by-id,omitempty" gorm:"type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updated_by_id,omitempty" xml:"updated-by-id,omitempty" gorm:"type:uuid"`

	// Relationships
	Clients  []Company `json:"clients,omitempty" xml:"-" gorm:"foreignKey:ClientOfID"`
	Users    []User    `json:"users,omitempty" xml:"-" gorm:"foreignKey:CompanyID"`
	Projects []Project `json:"projects,omitempty" xml:"-" gorm:"many2many:project_companies"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// IsOwner reports whether the company is the owner company
func (c *Company) IsOwner() bool {
	return c.ClientOfID == nil
}

// HasLogo reports whether a logo blob is attached
func (c *Company) HasLogo() bool {
	return c.LogoFile != nil
}

// LogoURL returns the public path of the company logo
func (c *Company) LogoURL() string {
	if !c.HasLogo() {
		return DefaultLogoURL
	}
	return fmt.Sprintf("/api/v1/companies/%s/logo.png", c.ID)
}

// IsPartOf reports whether the company takes part in the project. The owner
// company is part of every project created by one of its users.
func (c *Company) IsPartOf(project *Project) bool {
	if c.IsOwner() && project.CreatedBy != nil && project.CreatedBy.CompanyID == c.ID {
		return true
	}
	return project.HasCompany(c.ID)
}

// CompanyCanBeCreatedBy reports whether the actor may create client companies
func CompanyCanBeCreatedBy(actor Actor) bool {
	return actor.IsAdmin() && actor.MemberOfOwner()
}

// CanBeEditedBy reports whether the actor may edit the company
func (c *Company) CanBeEditedBy(actor Actor) bool {
	return actor.IsAdmin() && (actor.MemberOf(c.ID) || actor.MemberOfOwner())
}

// CanBeDeletedBy reports whether the actor may delete the company
func (c *Company) CanBeDeletedBy(actor Actor) bool {
	return actor.IsAdmin() && actor.MemberOfOwner()
}

// CanBeSeenBy reports whether the actor may see the company
func (c *Company) CanBeSeenBy(actor Actor) bool {
	return true
}

// ClientCanBeAddedBy reports whether the actor may add clients to the company
func (c *Company) ClientCanBeAddedBy(actor Actor) bool {
	return actor.IsAdmin() && actor.MemberOfOwner()
}

// CanBeManagedBy reports whether the actor may manage the company's project
// associations. The owner company is never managed as a client.
func (c *Company) CanBeManagedBy(actor Actor) bool {
	return actor.IsAdmin() && !c.IsOwner()
}

// TimezoneName returns the zone name matching the stored UTC offset, or "" if none matches
func (c *Company) TimezoneName() string {
	zone, ok := locale.ZoneForOffset(int(math.Floor(c.Timezone * 60 * 60)))
	if !ok {
		return ""
	}
	return zone.Name
}

// SetTimezoneName resolves a zone name to its UTC offset in hours
func (c *Company) SetTimezoneName(name string) error {
	seconds, ok := locale.OffsetForZone(name)
	if !ok {
		return apperrors.NewValidationError("timezone_name", "is not a known timezone")
	}
	c.Timezone = float64(seconds) / 60.0 / 60.0
	return nil
}

// CountryName returns the display name of the stored country code
func (c *Company) CountryName() string {
	return locale.CountryName(c.Country)
}

// SetCountryName assigns the code of the country with the given display name.
// Names without an exact match leave the country unchanged.
func (c *Company) SetCountryName(name string) {
	if code, ok := locale.CountryCode(name); ok {
		c.Country = code
	}
}

// ClientIDs returns the ids of the loaded clients
func (c *Company) ClientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Clients))
	for _, client := range c.Clients {
		ids = append(ids, client.ID)
	}
	return ids
}
