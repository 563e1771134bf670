package repository

import (
	"collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Omit("Clients", "Users", "Projects").Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByName retrieves a company by name
func (r *CompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetOwner retrieves the company without a parent
func (r *CompanyRepository) GetOwner() (*models.Company, error) {
	var company models.Company
	err := r.db.Where("client_of_id IS NULL").Order("created_on").First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetClients retrieves the direct clients of a company ordered by name
func (r *CompanyRepository) GetClients(ownerID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("client_of_id = ?", ownerID).Order("name").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// GetAll retrieves all companies ordered by name
func (r *CompanyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("name").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Update saves all company columns
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Omit("Clients", "Users", "Projects").Save(company).Error
}

// UpdateLogo sets or clears the stored logo reference
func (r *CompanyRepository) UpdateLogo(id uuid.UUID, logoFile *string) error {
	result := r.db.Model(&models.Company{}).Where("id = ?", id).Update("logo_file", logoFile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a company and its project associations in one transaction.
// release runs after the row is deleted; an error from it rolls everything back.
func (r *CompanyRepository) Delete(id uuid.UUID, release func() error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		company := &models.Company{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(company).Association("Projects").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&models.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if release != nil {
			return release()
		}
		return nil
	})
}
