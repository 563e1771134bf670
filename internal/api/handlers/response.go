package handlers

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strings"

	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/logger"
	"collab-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Message codes carried by StatusResponse
const (
	MsgAddedClient             = "success_added_client"
	MsgEditedClient            = "success_edited_client"
	MsgDeletedClient           = "success_deleted_client"
	MsgErrorDeletingClient     = "error_deleting_client"
	MsgUpdatedLogo             = "success_updated_logo"
	MsgErrorUploadingLogo      = "error_uploading_logo"
	MsgDeletedLogo             = "success_deleted_logo"
	MsgInvalidCompany          = "invalid_company"
	MsgInvalidProject          = "invalid_project"
	MsgLogoNotFound            = "logo_not_found"
	MsgInsufficientPermissions = "insufficient_permissions"
	MsgNoProjects              = "no_projects"
	MsgValidationFailed        = "validation_failed"
	MsgInvalidRequest          = "invalid_request"
	MsgUnauthorized            = "unauthorized"
	MsgInternalError           = "internal_error"
)

// StatusResponse is the outcome body of mutating requests
type StatusResponse struct {
	XMLName xml.Name                   `json:"-" xml:"status"`
	Error   bool                       `json:"error" xml:"error"`
	Message string                     `json:"message" xml:"message"`
	Company *service.CompanyResponse   `json:"company,omitempty" xml:"company,omitempty"`
	Errors  apperrors.ValidationErrors `json:"errors,omitempty" xml:"errors>error,omitempty"`
}

// wantsXML reports whether the client asked for an XML response
func wantsXML(c *gin.Context) bool {
	if strings.EqualFold(c.Query("format"), "xml") {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/xml") || strings.Contains(accept, "text/xml")
}

// render writes obj as XML or JSON depending on the request
func render(c *gin.Context, status int, obj interface{}) {
	if wantsXML(c) {
		c.XML(status, obj)
		return
	}
	c.JSON(status, obj)
}

func renderStatus(c *gin.Context, status int, message string, company *service.CompanyResponse) {
	render(c, status, StatusResponse{
		Error:   status >= http.StatusBadRequest,
		Message: message,
		Company: company,
	})
}

func renderFailure(c *gin.Context, status int, message string) {
	render(c, status, StatusResponse{Error: true, Message: message})
}

// renderError maps a service error to its HTTP representation. failure is the
// message code used for operation failures.
func renderError(c *gin.Context, err error, failure string) {
	switch {
	case apperrors.IsValidation(err):
		render(c, http.StatusUnprocessableEntity, StatusResponse{
			Error:   true,
			Message: MsgValidationFailed,
			Errors:  apperrors.FieldErrors(err),
		})
	case errors.Is(err, apperrors.ErrCompanyExists):
		render(c, http.StatusUnprocessableEntity, StatusResponse{
			Error:   true,
			Message: MsgValidationFailed,
			Errors:  apperrors.ValidationErrors{{Field: "name", Message: "has already been taken"}},
		})
	case errors.Is(err, apperrors.ErrProjectNotFound):
		renderFailure(c, http.StatusNotFound, MsgInvalidProject)
	case errors.Is(err, apperrors.ErrLogoNotFound):
		renderFailure(c, http.StatusNotFound, MsgLogoNotFound)
	case apperrors.IsNotFound(err):
		renderFailure(c, http.StatusNotFound, MsgInvalidCompany)
	case apperrors.IsAuthentication(err):
		renderFailure(c, http.StatusUnauthorized, MsgUnauthorized)
	case apperrors.IsAuthorization(err):
		renderFailure(c, http.StatusForbidden, MsgInsufficientPermissions)
	case errors.Is(err, apperrors.ErrInvalidCompany):
		renderFailure(c, http.StatusUnprocessableEntity, MsgInvalidCompany)
	case errors.Is(err, apperrors.ErrNoProjects):
		renderFailure(c, http.StatusUnprocessableEntity, MsgNoProjects)
	case apperrors.IsOperationFailed(err):
		logger.WithContext(c).WithError(err).Error("Operation failed")
		renderFailure(c, http.StatusInternalServerError, failure)
	default:
		logger.WithContext(c).WithError(err).Error("Unexpected error")
		renderFailure(c, http.StatusInternalServerError, MsgInternalError)
	}
}
