package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"collab-backend/internal/auth"
	"collab-backend/internal/config"
	"collab-backend/internal/database"
	"collab-backend/internal/database/models"
	"collab-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name         string `yaml:"name"`
	ClientOf     string `yaml:"client_of,omitempty"`
	Email        string `yaml:"email,omitempty"`
	Homepage     string `yaml:"homepage,omitempty"`
	PhoneNumber  string `yaml:"phone_number,omitempty"`
	Address      string `yaml:"address,omitempty"`
	City         string `yaml:"city,omitempty"`
	Zipcode      string `yaml:"zipcode,omitempty"`
	Country      string `yaml:"country,omitempty"`
	TimezoneName string `yaml:"timezone_name,omitempty"`
}

type UserData struct {
	Username    string `yaml:"username"`
	CompanyName string `yaml:"company_name"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	IsAdmin     bool   `yaml:"is_admin"`
}

type ProjectData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	CreatedBy   string   `yaml:"created_by"`
	Companies   []string `yaml:"companies,omitempty"`
	Users       []string `yaml:"users,omitempty"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	admin, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")

	if admin == nil {
		log.Println("No owner administrator found, skipping token generation")
		return
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  time.Duration(cfg.JWTTTLMinutes) * time.Minute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}
	token, err := authService.GenerateJWT(admin)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	log.Printf("Bearer token for %s: %s", admin.Username, token)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles creates companies, users and projects. It returns the
// first administrator of the owner company.
func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (*models.User, error) {
	companiesFiles, err := loadFiles[CompaniesFile](dataDir, "companies")
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	usersFiles, err := loadFiles[UsersFile](dataDir, "users")
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	projectsFiles, err := loadFiles[ProjectsFile](dataDir, "projects")
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	var companies []CompanyData
	for _, f := range companiesFiles {
		companies = append(companies, f.Companies...)
	}
	var users []UserData
	for _, f := range usersFiles {
		users = append(users, f.Users...)
	}
	var projects []ProjectData
	for _, f := range projectsFiles {
		projects = append(projects, f.Projects...)
	}

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// The owner has no client_of entry, so it is created before its clients
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for pass := 0; pass < 2; pass++ {
		for _, companyData := range companies {
			if (companyData.ClientOf == "") != (pass == 0) {
				continue
			}
			company, created, err := createCompany(companyRepo, companyData, companyMap)
			if err != nil {
				return nil, fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
			}
			companyMap[companyData.Name] = company
			if created {
				companyCreated++
			}
		}
	}
	log.Printf("Companies: %d created, %d total", companyCreated, len(companies))

	userMap := make(map[string]*models.User)
	userCreated := 0
	var ownerAdmin *models.User
	for _, userData := range users {
		user, created, err := createUser(userRepo, userData, companyMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
		if company := companyMap[userData.CompanyName]; ownerAdmin == nil && user.IsAdmin && company != nil && company.IsOwner() {
			ownerAdmin = user
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	projectCreated := 0
	for _, projectData := range projects {
		created, err := createProject(db, projectRepo, projectData, companyMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create project %s: %v", projectData.Name, err)
			continue
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	return ownerAdmin, nil
}

// loadFiles decodes every YAML file under dataDir whose path contains kind
func loadFiles[T any](dataDir, kind string) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			var file T
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file)
		}
		return nil
	})

	return all, err
}

func createCompany(repo *repository.CompanyRepository, companyData CompanyData, companyMap map[string]*models.Company) (*models.Company, bool, error) {
	existing, err := repo.GetByName(companyData.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query company: %w", err)
	}

	company := &models.Company{
		Name:        companyData.Name,
		Email:       companyData.Email,
		Homepage:    companyData.Homepage,
		PhoneNumber: companyData.PhoneNumber,
		Address:     companyData.Address,
		City:        companyData.City,
		Zipcode:     companyData.Zipcode,
	}
	if companyData.ClientOf != "" {
		owner, ok := companyMap[companyData.ClientOf]
		if !ok {
			return nil, false, fmt.Errorf("unknown owner company %q", companyData.ClientOf)
		}
		company.ClientOfID = &owner.ID
	}
	if companyData.Country != "" {
		company.SetCountryName(companyData.Country)
	}
	if companyData.TimezoneName != "" {
		if err := company.SetTimezoneName(companyData.TimezoneName); err != nil {
			return nil, false, err
		}
	}

	if err := repo.Create(company); err != nil {
		return nil, false, fmt.Errorf("failed to create company: %w", err)
	}
	return company, true, nil
}

func createUser(repo *repository.UserRepository, userData UserData, companyMap map[string]*models.Company) (*models.User, bool, error) {
	existing, err := repo.GetByUsername(userData.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	company, ok := companyMap[userData.CompanyName]
	if !ok {
		return nil, false, fmt.Errorf("unknown company %q", userData.CompanyName)
	}

	user := &models.User{
		CompanyID:   company.ID,
		Username:    userData.Username,
		DisplayName: userData.DisplayName,
		Email:       userData.Email,
		IsAdmin:     userData.IsAdmin,
	}
	if err := repo.Create(user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return user, true, nil
}

func createProject(db *gorm.DB, repo *repository.ProjectRepository, projectData ProjectData, companyMap map[string]*models.Company, userMap map[string]*models.User) (bool, error) {
	var existing models.Project
	err := db.Where("name = ?", projectData.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query project: %w", err)
	}

	creator, ok := userMap[projectData.CreatedBy]
	if !ok {
		return false, fmt.Errorf("unknown creator %q", projectData.CreatedBy)
	}

	project := &models.Project{
		Name:        projectData.Name,
		Description: projectData.Description,
		CreatedByID: creator.ID,
	}
	if err := repo.Create(project); err != nil {
		return false, fmt.Errorf("failed to create project: %w", err)
	}

	members := append([]string{projectData.CreatedBy}, projectData.Users...)
	seen := make(map[uuid.UUID]bool)
	for _, username := range members {
		user, ok := userMap[username]
		if !ok {
			log.Printf("Warning: project %s references unknown user %s", projectData.Name, username)
			continue
		}
		if seen[user.ID] {
			continue
		}
		seen[user.ID] = true
		if err := repo.AddUser(project.ID, user.ID); err != nil {
			return true, fmt.Errorf("failed to add user %s: %w", username, err)
		}
	}

	for _, name := range projectData.Companies {
		company, ok := companyMap[name]
		if !ok {
			log.Printf("Warning: project %s references unknown company %s", projectData.Name, name)
			continue
		}
		if err := repo.AddCompany(project.ID, company.ID); err != nil {
			return true, fmt.Errorf("failed to add company %s: %w", name, err)
		}
	}

	return true, nil
}
