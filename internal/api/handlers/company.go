package handlers

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"

	"collab-backend/internal/auth"
	"collab-backend/internal/database/models"
	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/logger"
	"collab-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// multipartOverhead leaves room for the multipart envelope around the logo part
const multipartOverhead = 64 << 10

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service        service.CompanyServiceInterface
	maxUploadBytes int64
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface, maxUploadBytes int64) *CompanyHandler {
	return &CompanyHandler{service: service, maxUploadBytes: maxUploadBytes}
}

type companyOptionsXML struct {
	XMLName xml.Name                `xml:"companies"`
	Options []service.CompanyOption `xml:"company"`
}

type usersXML struct {
	XMLName xml.Name               `xml:"users"`
	Users   []service.UserResponse `xml:"user"`
}

// ListCompanies handles GET /api/v1/companies
// @Summary List companies
// @Description Get the owner company and its direct clients. XML output is limited to administrators.
// @Tags companies
// @Produce json,xml
// @Param format query string false "Response format (json or xml)"
// @Success 200 {object} service.CompanyListResponse "Owner company and clients"
// @Failure 403 {object} StatusResponse "XML requested by a non-administrator"
// @Failure 500 {object} StatusResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if wantsXML(c) && !actor.IsAdmin() {
		renderFailure(c, http.StatusForbidden, MsgInsufficientPermissions)
		return
	}

	companies, err := h.service.List(c, actor)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	render(c, http.StatusOK, companies)
}

// SelectList handles GET /api/v1/companies/select-list
// @Summary Company select list
// @Description Get every company as an id/name pair ordered by name
// @Tags companies
// @Produce json,xml
// @Success 200 {array} service.CompanyOption "Companies"
// @Failure 500 {object} StatusResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/select-list [get]
func (h *CompanyHandler) SelectList(c *gin.Context) {
	options, err := h.service.SelectList(c)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	if wantsXML(c) {
		c.XML(http.StatusOK, companyOptionsXML{Options: options})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Get company by ID
// @Description Get a specific company by its UUID
// @Tags companies
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse "Company"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	company, err := h.service.Get(c, actor, id)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	render(c, http.StatusOK, company)
}

// CreateCompany handles POST /api/v1/companies
// @Summary Create a client company
// @Description Create a new client of the owner company
// @Tags companies
// @Accept json,xml
// @Produce json,xml
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} StatusResponse "success_added_client"
// @Failure 400 {object} StatusResponse "Invalid request body"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 422 {object} StatusResponse "Field errors"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req service.CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		renderFailure(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	company, err := h.service.Create(c, actor, &req)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	if wantsXML(c) {
		c.Header("Location", fmt.Sprintf("/api/v1/companies/%s", company.ID))
	}
	renderStatus(c, http.StatusCreated, MsgAddedClient, company)
}

// UpdateCompany handles PUT /api/v1/companies/:id
// @Summary Update a company
// @Description Update the provided attributes of a company
// @Tags companies
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Company attributes"
// @Success 200 {object} StatusResponse "success_edited_client"
// @Failure 400 {object} StatusResponse "Invalid request body"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Failure 422 {object} StatusResponse "Field errors"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		renderFailure(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	company, err := h.service.Update(c, actor, id, &req)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	renderStatus(c, http.StatusOK, MsgEditedClient, company)
}

// HideWelcomeInfo handles PUT /api/v1/companies/:id/hide-welcome-info
// @Summary Hide the welcome info
// @Description Hide the welcome info of the owner company
// @Tags companies
// @Produce json,xml
// @Param id path string true "Owner company ID (UUID)"
// @Success 200 {object} StatusResponse "Owner company"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 422 {object} StatusResponse "invalid_company"
// @Security BearerAuth
// @Router /companies/{id}/hide-welcome-info [put]
func (h *CompanyHandler) HideWelcomeInfo(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	company, err := h.service.HideWelcomeInfo(c, actor, id)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	renderStatus(c, http.StatusOK, MsgEditedClient, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
// @Summary Delete a company
// @Description Delete a company and its logo. A blocked delete answers 200 with error_deleting_client.
// @Tags companies
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} StatusResponse "success_deleted_client or error_deleting_client"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	result, err := h.service.Destroy(c, actor, id)
	if err != nil {
		renderError(c, err, MsgErrorDeletingClient)
		return
	}

	if !result.Deleted {
		logger.WithContext(c).WithError(result.Cause).WithField("company_id", result.CompanyID).Warn("Company was not deleted")
		render(c, http.StatusOK, StatusResponse{Error: true, Message: MsgErrorDeletingClient})
		return
	}

	render(c, http.StatusOK, StatusResponse{Message: MsgDeletedClient})
}

// GetPermissions handles GET /api/v1/companies/:id/permissions
// @Summary Get project permissions
// @Description List every project with the company's association state
// @Tags companies
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.PermissionsResponse "Projects"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Failure 422 {object} StatusResponse "no_projects"
// @Security BearerAuth
// @Router /companies/{id}/permissions [get]
func (h *CompanyHandler) GetPermissions(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	permissions, err := h.service.Permissions(c, actor, id)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	render(c, http.StatusOK, permissions)
}

// UpdatePermissions handles PUT /api/v1/companies/:id/permissions
// @Summary Update project permissions
// @Description Add the company to the listed projects and remove it from the others the caller is a member of
// @Tags companies
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Param permissions body service.UpdatePermissionsRequest true "Project ids"
// @Success 200 {object} service.PermissionsResponse "Projects"
// @Failure 400 {object} StatusResponse "Invalid request body"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Failure 422 {object} StatusResponse "no_projects"
// @Security BearerAuth
// @Router /companies/{id}/permissions [put]
func (h *CompanyHandler) UpdatePermissions(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req service.UpdatePermissionsRequest
	if err := c.ShouldBind(&req); err != nil {
		renderFailure(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	permissions, err := h.service.UpdatePermissions(c, actor, id, &req)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	render(c, http.StatusOK, permissions)
}

// GetLogo handles GET /api/v1/companies/:id/logo.png
// @Summary Get company logo
// @Description Serve the stored logo of a company
// @Tags companies
// @Produce png
// @Param id path string true "Company ID (UUID)"
// @Success 200 {file} binary "Logo"
// @Failure 404 {object} StatusResponse "No logo"
// @Router /companies/{id}/logo.png [get]
func (h *CompanyHandler) GetLogo(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	rc, err := h.service.Logo(c, id)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, -1, "image/png", rc, nil)
}

// UpdateLogo handles PUT /api/v1/companies/:id/logo
// @Summary Upload company logo
// @Description Replace the company logo. The image is bounded and stored as PNG.
// @Tags companies
// @Accept mpfd
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Param logo formData file true "Logo image (gif, jpeg or png)"
// @Success 200 {object} StatusResponse "success_updated_logo"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Failure 422 {object} StatusResponse "Field errors"
// @Failure 500 {object} StatusResponse "error_uploading_logo"
// @Security BearerAuth
// @Router /companies/{id}/logo [put]
func (h *CompanyHandler) UpdateLogo(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	var upload *service.LogoUpload
	header, err := c.FormFile("logo")
	switch {
	case err == nil:
		file, openErr := header.Open()
		if openErr != nil {
			renderError(c, openErr, MsgErrorUploadingLogo)
			return
		}
		defer file.Close()

		upload = &service.LogoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			renderError(c, apperrors.NewValidationError("logo", fmt.Sprintf("is too large (maximum is %d bytes)", h.maxUploadBytes)), MsgErrorUploadingLogo)
			return
		}
		renderFailure(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	company, err := h.service.SetLogo(c, actor, id, upload)
	if err != nil {
		renderError(c, err, MsgErrorUploadingLogo)
		return
	}

	renderStatus(c, http.StatusOK, MsgUpdatedLogo, company)
}

// DeleteLogo handles DELETE /api/v1/companies/:id/logo
// @Summary Delete company logo
// @Description Remove the company logo
// @Tags companies
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} StatusResponse "success_deleted_logo"
// @Failure 403 {object} StatusResponse "insufficient_permissions"
// @Failure 404 {object} StatusResponse "invalid_company"
// @Security BearerAuth
// @Router /companies/{id}/logo [delete]
func (h *CompanyHandler) DeleteLogo(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	company, err := h.service.ClearLogo(c, actor, id)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	renderStatus(c, http.StatusOK, MsgDeletedLogo, company)
}

// GetUsersOnProject handles GET /api/v1/companies/:id/projects/:project_id/users
// @Summary Company users on a project
// @Description List the users of a company that are members of a project
// @Tags companies
// @Produce json,xml
// @Param id path string true "Company ID (UUID)"
// @Param project_id path string true "Project ID (UUID)"
// @Success 200 {array} service.UserResponse "Users"
// @Failure 404 {object} StatusResponse "invalid_company or invalid_project"
// @Security BearerAuth
// @Router /companies/{id}/projects/{project_id}/users [get]
func (h *CompanyHandler) GetUsersOnProject(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		renderFailure(c, http.StatusNotFound, MsgInvalidProject)
		return
	}
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	users, err := h.service.UsersOnProject(c, actor, id, projectID)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return
	}

	if wantsXML(c) {
		c.XML(http.StatusOK, usersXML{Users: users})
		return
	}
	c.JSON(http.StatusOK, users)
}

// actor resolves the authenticated user. It renders the failure itself.
func (h *CompanyHandler) actor(c *gin.Context) (models.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		renderFailure(c, http.StatusUnauthorized, MsgUnauthorized)
		return models.Actor{}, false
	}

	actor, err := h.service.Actor(c, userID)
	if err != nil {
		renderError(c, err, MsgInternalError)
		return models.Actor{}, false
	}
	return actor, true
}

// companyID parses the :id parameter. Malformed ids render as invalid_company.
func companyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderFailure(c, http.StatusNotFound, MsgInvalidCompany)
		return uuid.Nil, false
	}
	return id, true
}
