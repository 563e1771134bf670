package auth

import (
	"collab-backend/internal/database/models"
	apperrors "collab-backend/internal/errors"
)

// Action names an operation checked against a company
type Action string

const (
	ActionShow          Action = "show"
	ActionCreateCompany Action = "create_company"
	ActionEdit          Action = "edit"
	ActionDelete        Action = "delete"
	ActionManage        Action = "manage"
	ActionAddClient     Action = "add_client"
)

// Can reports whether actor may perform action on company. company may be nil for ActionCreateCompany.
func Can(actor models.Actor, action Action, company *models.Company) bool {
	if action == ActionCreateCompany {
		return models.CompanyCanBeCreatedBy(actor)
	}
	if company == nil {
		return false
	}

	switch action {
	case ActionShow:
		return company.CanBeSeenBy(actor)
	case ActionEdit:
		return company.CanBeEditedBy(actor)
	case ActionDelete:
		return company.CanBeDeletedBy(actor)
	case ActionManage:
		return company.CanBeManagedBy(actor)
	case ActionAddClient:
		return company.ClientCanBeAddedBy(actor)
	default:
		return false
	}
}

// Authorize checks authorization and returns an error if not authorized
func Authorize(actor models.Actor, action Action, company *models.Company) error {
	if actor.User == nil {
		return apperrors.ErrMissingUser
	}
	if !Can(actor, action, company) {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}
