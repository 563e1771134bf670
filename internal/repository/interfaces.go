package repository

import (
	"collab-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetOwner() (*models.Company, error)
	GetClients(ownerID uuid.UUID) ([]models.Company, error)
	GetAll() ([]models.Company, error)
	Update(company *models.Company) error
	UpdateLogo(id uuid.UUID, logoFile *string) error
	Delete(id uuid.UUID, release func() error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByCompanyOnProject(companyID, projectID uuid.UUID) ([]models.User, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	AddCompany(projectID, companyID uuid.UUID) error
	RemoveCompany(projectID, companyID uuid.UUID) error
	AddUser(projectID, userID uuid.UUID) error
}
