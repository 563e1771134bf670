package repository

import (
	"collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Omit("CreatedBy", "Companies", "Users").Create(project).Error
}

// GetByID retrieves a project with its creator, companies and users
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("CreatedBy").Preload("Companies").Preload("Users").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects ordered by name with companies and users loaded
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("CreatedBy").Preload("Companies").Preload("Users").Order("name").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// AddCompany associates a company with a project. Existing associations are left alone.
func (r *ProjectRepository) AddCompany(projectID, companyID uuid.UUID) error {
	return r.db.Table("project_companies").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{"project_id": projectID, "company_id": companyID}).Error
}

// RemoveCompany removes a company from a project. Missing associations are not an error.
func (r *ProjectRepository) RemoveCompany(projectID, companyID uuid.UUID) error {
	project := &models.Project{BaseModel: models.BaseModel{ID: projectID}}
	company := &models.Company{BaseModel: models.BaseModel{ID: companyID}}
	return r.db.Model(project).Association("Companies").Delete(company)
}

// AddUser makes a user a member of a project
func (r *ProjectRepository) AddUser(projectID, userID uuid.UUID) error {
	return r.db.Table("project_users").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{"project_id": projectID, "user_id": userID}).Error
}
