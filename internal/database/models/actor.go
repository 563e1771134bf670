package models

import "github.com/google/uuid"

// Actor is the user performing a request together with the id of the owner company
// the membership rules are evaluated against.
type Actor struct {
	User    *User
	OwnerID uuid.UUID
}

// IsAdmin reports whether the actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.User != nil && a.User.IsAdmin
}

// MemberOf reports whether the actor belongs to the given company
func (a Actor) MemberOf(companyID uuid.UUID) bool {
	return a.User != nil && a.User.CompanyID == companyID
}

// MemberOfOwner reports whether the actor belongs to the owner company
func (a Actor) MemberOfOwner() bool {
	return a.OwnerID != uuid.Nil && a.MemberOf(a.OwnerID)
}

// MemberOfProject reports whether the actor is a member of the project
func (a Actor) MemberOfProject(project *Project) bool {
	return a.User != nil && project.HasUser(a.User.ID)
}
