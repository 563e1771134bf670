package service

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"collab-backend/internal/auth"
	"collab-backend/internal/database/models"
	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/locale"
	"collab-backend/internal/logger"
	"collab-backend/internal/metrics"
	"collab-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo        repository.CompanyRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	owners      *OwnerDirectory
	logos       *LogoService
	validator   *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(
	repo repository.CompanyRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	owners *OwnerDirectory,
	logos *LogoService,
	validator *validator.Validate,
) *CompanyService {
	return &CompanyService{
		repo:        repo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		owners:      owners,
		logos:       logos,
		validator:   validator,
	}
}

// CreateCompanyRequest represents the request to create a client company
type CreateCompanyRequest struct {
	XMLName      xml.Name `json:"-" xml:"company"`
	Name         string   `json:"name" xml:"name" validate:"required,min=1,max=100"`
	Email        string   `json:"email" xml:"email" validate:"omitempty,email,max=100"`
	Homepage     string   `json:"homepage" xml:"homepage" validate:"omitempty,url,max=100"`
	PhoneNumber  string   `json:"phone_number" xml:"phone-number" validate:"max=30"`
	FaxNumber    string   `json:"fax_number" xml:"fax-number" validate:"max=30"`
	Address      string   `json:"address" xml:"address" validate:"max=100"`
	Address2     string   `json:"address2" xml:"address2" validate:"max=100"`
	City         string   `json:"city" xml:"city" validate:"max=50"`
	State        string   `json:"state" xml:"state" validate:"max=50"`
	Zipcode      string   `json:"zipcode" xml:"zipcode" validate:"max=30"`
	CountryCode  string   `json:"country_code" xml:"country-code" validate:"omitempty,len=2"`
	CountryName  string   `json:"country_name" xml:"country-name"`
	TimezoneName string   `json:"timezone_name" xml:"timezone-name"`
}

// UpdateCompanyRequest represents a partial company update. Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	XMLName      xml.Name `json:"-" xml:"company"`
	Name         *string  `json:"name" xml:"name" validate:"omitempty,min=1,max=100"`
	Email        *string  `json:"email" xml:"email" validate:"omitempty,email,max=100"`
	Homepage     *string  `json:"homepage" xml:"homepage" validate:"omitempty,url,max=100"`
	PhoneNumber  *string  `json:"phone_number" xml:"phone-number" validate:"omitempty,max=30"`
	FaxNumber    *string  `json:"fax_number" xml:"fax-number" validate:"omitempty,max=30"`
	Address      *string  `json:"address" xml:"address" validate:"omitempty,max=100"`
	Address2     *string  `json:"address2" xml:"address2" validate:"omitempty,max=100"`
	City         *string  `json:"city" xml:"city" validate:"omitempty,max=50"`
	State        *string  `json:"state" xml:"state" validate:"omitempty,max=50"`
	Zipcode      *string  `json:"zipcode" xml:"zipcode" validate:"omitempty,max=30"`
	CountryCode  *string  `json:"country_code" xml:"country-code" validate:"omitempty,len=2"`
	CountryName  *string  `json:"country_name" xml:"country-name"`
	TimezoneName *string  `json:"timezone_name" xml:"timezone-name"`
}

// UpdatePermissionsRequest lists the projects the company should take part in
type UpdatePermissionsRequest struct {
	XMLName    xml.Name    `json:"-" xml:"permissions"`
	ProjectIDs []uuid.UUID `json:"project_ids" xml:"project-ids>project-id"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	XMLName         xml.Name   `json:"-" xml:"company"`
	ID              uuid.UUID  `json:"id" xml:"id"`
	ClientOfID      *uuid.UUID `json:"client_of_id,omitempty" xml:"client-of-id,omitempty"`
	Name            string     `json:"name" xml:"name"`
	Email           string     `json:"email" xml:"email"`
	Homepage        string     `json:"homepage" xml:"homepage"`
	PhoneNumber     string     `json:"phone_number" xml:"phone-number"`
	FaxNumber       string     `json:"fax_number" xml:"fax-number"`
	Address         string     `json:"address" xml:"address"`
	Address2        string     `json:"address2" xml:"address2"`
	City            string     `json:"city" xml:"city"`
	State           string     `json:"state" xml:"state"`
	Zipcode         string     `json:"zipcode" xml:"zipcode"`
	CountryCode     string     `json:"country_code" xml:"country-code"`
	CountryName     string     `json:"country_name" xml:"country-name"`
	Timezone        float64    `json:"timezone" xml:"timezone"`
	TimezoneName    string     `json:"timezone_name" xml:"timezone-name"`
	LogoURL         string     `json:"logo_url" xml:"logo-url"`
	HasLogo         bool       `json:"has_logo" xml:"has-logo"`
	HideWelcomeInfo bool       `json:"hide_welcome_info" xml:"hide-welcome-info"`
	IsOwner         bool       `json:"is_owner" xml:"is-owner"`
	CreatedByID     *uuid.UUID `json:"created_by_id,omitempty" xml:"created-by-id,omitempty"`
	UpdatedByID     *uuid.UUID `json:"updated_by_id,omitempty" xml:"updated-by-id,omitempty"`
	CreatedOn       string     `json:"created_on" xml:"created-on"`
	UpdatedOn       string     `json:"updated_on,omitempty" xml:"updated-on,omitempty"`
}

// CompanyListResponse represents the owner company and its direct clients
type CompanyListResponse struct {
	XMLName xml.Name          `json:"-" xml:"companies"`
	Owner   CompanyResponse   `json:"owner" xml:"owner>company"`
	Clients []CompanyResponse `json:"clients" xml:"clients>company"`
}

// CompanyOption is one entry of the company select list
type CompanyOption struct {
	ID   uuid.UUID `json:"id" xml:"id"`
	Name string    `json:"name" xml:"name"`
}

// ProjectPermission describes one project of the permissions screen
type ProjectPermission struct {
	ID         uuid.UUID `json:"id" xml:"id"`
	Name       string    `json:"name" xml:"name"`
	Associated bool      `json:"associated" xml:"associated"`
	Manageable bool      `json:"manageable" xml:"manageable"`
}

// PermissionsResponse represents the project associations of a company
type PermissionsResponse struct {
	XMLName  xml.Name            `json:"-" xml:"permissions"`
	Company  CompanyResponse     `json:"company" xml:"company"`
	Projects []ProjectPermission `json:"projects" xml:"projects>project"`
}

// UserResponse represents a user in company listings
type UserResponse struct {
	ID          uuid.UUID `json:"id" xml:"id"`
	Username    string    `json:"username" xml:"username"`
	DisplayName string    `json:"display_name" xml:"display-name"`
	Email       string    `json:"email" xml:"email"`
	IsAdmin     bool      `json:"is_admin" xml:"is-admin"`
}

// DestroyResult reports the outcome of a destroy. A destroy blocked by the blob
// store or the database leaves the company in place and carries the cause.
type DestroyResult struct {
	CompanyID uuid.UUID `json:"company_id"`
	Deleted   bool      `json:"deleted"`
	Cause     error     `json:"-"`
}

// Actor resolves the acting user together with the owner company
func (s *CompanyService) Actor(ctx context.Context, userID uuid.UUID) (models.Actor, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Actor{}, apperrors.ErrMissingUser
		}
		return models.Actor{}, fmt.Errorf("failed to get user: %w", err)
	}

	owner, err := s.owners.Owner(ctx)
	if err != nil {
		return models.Actor{}, err
	}

	return models.Actor{User: user, OwnerID: owner.ID}, nil
}

// List returns the owner company and its direct clients
func (s *CompanyService) List(ctx context.Context, actor models.Actor) (*CompanyListResponse, error) {
	owner, err := s.owners.Owner(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.GetClients(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	response := &CompanyListResponse{
		Owner:   *s.toResponse(owner),
		Clients: make([]CompanyResponse, 0, len(clients)),
	}
	for i := range clients {
		response.Clients = append(response.Clients, *s.toResponse(&clients[i]))
	}
	return response, nil
}

// SelectList returns every company as an id/name pair ordered by name
func (s *CompanyService) SelectList(ctx context.Context) ([]CompanyOption, error) {
	companies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	options := make([]CompanyOption, 0, len(companies))
	for _, company := range companies {
		options = append(options, CompanyOption{ID: company.ID, Name: company.Name})
	}
	return options, nil
}

// Get returns one company
func (s *CompanyService) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionShow, company); err != nil {
		return nil, err
	}
	return s.toResponse(company), nil
}

// Create creates a client of the owner company
func (s *CompanyService) Create(ctx context.Context, actor models.Actor, req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreateCompany, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err)
	}

	owner, err := s.owners.Owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueName(req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	company := &models.Company{
		ClientOfID:  &owner.ID,
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Homepage:    req.Homepage,
		PhoneNumber: req.PhoneNumber,
		FaxNumber:   req.FaxNumber,
		Address:     req.Address,
		Address2:    req.Address2,
		City:        req.City,
		State:       req.State,
		Zipcode:     req.Zipcode,
		CreatedByID: &actor.User.ID,
	}
	if err := applyLocale(company, &req.CountryCode, &req.CountryName, &req.TimezoneName); err != nil {
		return nil, err
	}

	if err := s.repo.Create(company); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	logger.WithContext(ctx).WithField("company_id", company.ID).Info("Client company created")
	return s.toResponse(company), nil
}

// Update merges the provided attributes into a company
func (s *CompanyService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionEdit, company); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "can't be blank")
		}
		if name != company.Name {
			if err := s.ensureUniqueName(name, company.ID); err != nil {
				return nil, err
			}
		}
		company.Name = name
	}
	assign(&company.Email, req.Email)
	assign(&company.Homepage, req.Homepage)
	assign(&company.PhoneNumber, req.PhoneNumber)
	assign(&company.FaxNumber, req.FaxNumber)
	assign(&company.Address, req.Address)
	assign(&company.Address2, req.Address2)
	assign(&company.City, req.City)
	assign(&company.State, req.State)
	assign(&company.Zipcode, req.Zipcode)
	if err := applyLocale(company, req.CountryCode, req.CountryName, req.TimezoneName); err != nil {
		return nil, err
	}
	company.UpdatedByID = &actor.User.ID

	if err := s.repo.Update(company); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	if company.IsOwner() {
		s.owners.Invalidate()
	}
	return s.toResponse(company), nil
}

// HideWelcomeInfo sets the hide_welcome_info flag on the owner company. A failed
// save is logged and otherwise ignored.
func (s *CompanyService) HideWelcomeInfo(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if !company.IsOwner() {
		return nil, apperrors.ErrInvalidCompany
	}
	if err := auth.Authorize(actor, auth.ActionEdit, company); err != nil {
		return nil, err
	}

	company.HideWelcomeInfo = true
	company.UpdatedByID = &actor.User.ID
	if err := s.repo.Update(company); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("company_id", company.ID).Warn("Failed to save hide_welcome_info")
	}
	s.owners.Invalidate()

	return s.toResponse(company), nil
}

// Destroy deletes a company after releasing its logo blob. Storage and database
// failures do not surface as errors; they come back as a blocked result.
func (s *CompanyService) Destroy(ctx context.Context, actor models.Actor, id uuid.UUID) (*DestroyResult, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionDelete, company); err != nil {
		return nil, err
	}

	if company.IsOwner() {
		clients, err := s.repo.GetClients(company.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get clients: %w", err)
		}
		company.Clients = clients
		if ids := company.ClientIDs(); len(ids) > 0 {
			metrics.CompanyDestroysTotal.WithLabelValues(metrics.ResultInUse).Inc()
			logger.WithContext(ctx).WithField("company_id", company.ID).WithField("clients", len(ids)).
				Warn("Owner company still has clients")
			return &DestroyResult{
				CompanyID: company.ID,
				Cause:     apperrors.NewOperationFailedError("delete company", apperrors.ErrReferenced),
			}, nil
		}
	}

	err = s.repo.Delete(company.ID, func() error {
		return s.logos.Release(ctx, company.LogoFile)
	})
	if err != nil {
		entry := logger.WithContext(ctx).WithError(err).WithField("company_id", company.ID)
		if repository.IsForeignKeyViolation(err) {
			metrics.CompanyDestroysTotal.WithLabelValues(metrics.ResultInUse).Inc()
			entry.Warn("Company is still referenced and was not deleted")
			err = fmt.Errorf("%w: %w", apperrors.ErrReferenced, err)
		} else {
			metrics.CompanyDestroysTotal.WithLabelValues(metrics.ResultBlocked).Inc()
			entry.Error("Failed to delete company")
		}
		return &DestroyResult{
			CompanyID: company.ID,
			Cause:     apperrors.NewOperationFailedError("delete company", err),
		}, nil
	}

	if company.IsOwner() {
		s.owners.Invalidate()
	}
	metrics.CompanyDestroysTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return &DestroyResult{CompanyID: company.ID, Deleted: true}, nil
}

// Permissions lists every project with the company's association state
func (s *CompanyService) Permissions(ctx context.Context, actor models.Actor, id uuid.UUID) (*PermissionsResponse, error) {
	company, projects, err := s.permissionTargets(actor, id)
	if err != nil {
		return nil, err
	}
	return s.toPermissionsResponse(actor, company, projects), nil
}

// UpdatePermissions adds the company to the listed projects and removes it from
// the others. Only projects the actor is a member of are touched, each one on its own.
func (s *CompanyService) UpdatePermissions(ctx context.Context, actor models.Actor, id uuid.UUID, req *UpdatePermissionsRequest) (*PermissionsResponse, error) {
	company, projects, err := s.permissionTargets(actor, id)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		if !actor.MemberOfProject(&project) {
			continue
		}

		if slices.Contains(req.ProjectIDs, project.ID) {
			if project.HasCompany(company.ID) {
				continue
			}
			if err := s.projectRepo.AddCompany(project.ID, company.ID); err != nil {
				return nil, fmt.Errorf("failed to add company to project %s: %w", project.ID, err)
			}
		} else {
			if err := s.projectRepo.RemoveCompany(project.ID, company.ID); err != nil {
				return nil, fmt.Errorf("failed to remove company from project %s: %w", project.ID, err)
			}
		}
	}

	projects, err = s.projectRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to reload projects: %w", err)
	}
	return s.toPermissionsResponse(actor, company, projects), nil
}

// SetLogo replaces the company logo. Rejected uploads leave the company and its
// current blob untouched.
func (s *CompanyService) SetLogo(ctx context.Context, actor models.Actor, id uuid.UUID, upload *LogoUpload) (*CompanyResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionEdit, company); err != nil {
		return nil, err
	}

	data, err := s.logos.Prepare(upload)
	if err != nil {
		metrics.LogoUploadsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	if err := s.logos.Release(ctx, company.LogoFile); err != nil {
		metrics.LogoUploadsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, apperrors.NewOperationFailedError("upload logo", err)
	}
	released := company.HasLogo()

	ref, err := s.logos.Store(ctx, data)
	if err != nil {
		metrics.LogoUploadsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		if released {
			if clearErr := s.repo.UpdateLogo(company.ID, nil); clearErr != nil {
				logger.WithContext(ctx).WithError(clearErr).Warn("Failed to clear released logo reference")
			}
		}
		return nil, apperrors.NewOperationFailedError("upload logo", err)
	}

	if err := s.repo.UpdateLogo(company.ID, &ref); err != nil {
		metrics.LogoUploadsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		if releaseErr := s.logos.Release(ctx, &ref); releaseErr != nil {
			logger.WithContext(ctx).WithError(releaseErr).Warn("Failed to release orphaned logo")
		}
		return nil, apperrors.NewOperationFailedError("upload logo", err)
	}

	metrics.LogoUploadsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	company.LogoFile = &ref
	return s.toResponse(company), nil
}

// ClearLogo removes the company logo. A blob that cannot be deleted is logged and
// the reference is cleared anyway.
func (s *CompanyService) ClearLogo(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionEdit, company); err != nil {
		return nil, err
	}

	if err := s.logos.Release(ctx, company.LogoFile); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("company_id", company.ID).Warn("Failed to delete logo blob")
	}
	if company.HasLogo() {
		if err := s.repo.UpdateLogo(company.ID, nil); err != nil {
			return nil, fmt.Errorf("failed to clear logo: %w", err)
		}
	}

	company.LogoFile = nil
	return s.toResponse(company), nil
}

// Logo opens the stored logo of a company
func (s *CompanyService) Logo(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if !company.HasLogo() {
		return nil, apperrors.ErrLogoNotFound
	}
	return s.logos.Open(ctx, *company.LogoFile)
}

// UsersOnProject returns the users of a company that are members of a project
func (s *CompanyService) UsersOnProject(ctx context.Context, actor models.Actor, id, projectID uuid.UUID) ([]UserResponse, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionShow, company); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	users, err := s.userRepo.GetByCompanyOnProject(company.ID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users on project: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Email:       user.Email,
			IsAdmin:     user.IsAdmin,
		})
	}
	return responses, nil
}

// obtain resolves a company by id
func (s *CompanyService) obtain(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) permissionTargets(actor models.Actor, id uuid.UUID) (*models.Company, []models.Project, error) {
	company, err := s.obtain(id)
	if err != nil {
		return nil, nil, err
	}
	if err := auth.Authorize(actor, auth.ActionManage, company); err != nil {
		return nil, nil, err
	}

	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, nil, apperrors.ErrNoProjects
	}
	return company, projects, nil
}

func (s *CompanyService) ensureUniqueName(name string, except uuid.UUID) error {
	existing, err := s.repo.GetByName(strings.TrimSpace(name))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing company by name: %w", err)
	}
	if existing != nil && existing.ID != except {
		return apperrors.ErrCompanyExists
	}
	return nil
}

func (s *CompanyService) toPermissionsResponse(actor models.Actor, company *models.Company, projects []models.Project) *PermissionsResponse {
	response := &PermissionsResponse{
		Company:  *s.toResponse(company),
		Projects: make([]ProjectPermission, 0, len(projects)),
	}
	for _, project := range projects {
		response.Projects = append(response.Projects, ProjectPermission{
			ID:         project.ID,
			Name:       project.Name,
			Associated: project.HasCompany(company.ID),
			Manageable: actor.MemberOfProject(&project),
		})
	}
	return response
}

func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	response := &CompanyResponse{
		ID:              company.ID,
		ClientOfID:      company.ClientOfID,
		Name:            company.Name,
		Email:           company.Email,
		Homepage:        company.Homepage,
		PhoneNumber:     company.PhoneNumber,
		FaxNumber:       company.FaxNumber,
		Address:         company.Address,
		Address2:        company.Address2,
		City:            company.City,
		State:           company.State,
		Zipcode:         company.Zipcode,
		CountryCode:     company.Country,
		CountryName:     company.CountryName(),
		Timezone:        company.Timezone,
		TimezoneName:    company.TimezoneName(),
		LogoURL:         company.LogoURL(),
		HasLogo:         company.HasLogo(),
		HideWelcomeInfo: company.HideWelcomeInfo,
		IsOwner:         company.IsOwner(),
		CreatedByID:     company.CreatedByID,
		UpdatedByID:     company.UpdatedByID,
		CreatedOn:       company.CreatedOn.Format(time.RFC3339),
	}
	if company.UpdatedOn != nil {
		response.UpdatedOn = company.UpdatedOn.Format(time.RFC3339)
	}
	return response
}

// applyLocale applies country and timezone inputs. An explicit country code wins
// over a country name; unknown names leave the country unchanged.
func applyLocale(company *models.Company, countryCode, countryName, timezoneName *string) error {
	var errs apperrors.ValidationErrors

	switch {
	case countryCode != nil && *countryCode != "":
		code := strings.ToUpper(*countryCode)
		if !locale.IsCountryCode(code) {
			errs.Add("country_code", "is not a known country")
		} else {
			company.Country = code
		}
	case countryCode != nil && countryName == nil:
		company.Country = ""
	case countryName != nil:
		company.SetCountryName(*countryName)
	}

	if timezoneName != nil && *timezoneName != "" {
		if err := company.SetTimezoneName(*timezoneName); err != nil {
			errs = append(errs, apperrors.FieldErrors(err)...)
		}
	}

	return errs.OrNil()
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
