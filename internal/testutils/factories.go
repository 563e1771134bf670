package testutils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"

	"collab-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name:        "Test Company " + uuid.NewString()[:8],
		Email:       "info@test.com",
		Homepage:    "https://test.com",
		PhoneNumber: "+1 555 0100",
		City:        "Springfield",
		Country:     "US",
	}
}

// Owner creates a test owner company
func (f *CompanyFactory) Owner() *models.Company {
	company := f.Create()
	company.Name = "Owner Company"
	return company
}

// ClientOf creates a test client of the given company
func (f *CompanyFactory) ClientOf(ownerID uuid.UUID) *models.Company {
	company := f.Create()
	company.ClientOfID = &ownerID
	return company
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID: id,
		},
		Username:    "user-" + id.String()[:8],
		DisplayName: "Test User",
		Email:       fmt.Sprintf("user-%s@test.com", id.String()[:8]),
	}
}

// WithCompany creates a regular user of the given company
func (f *UserFactory) WithCompany(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	return user
}

// AdminOf creates an administrator of the given company
func (f *UserFactory) AdminOf(companyID uuid.UUID) *models.User {
	user := f.WithCompany(companyID)
	user.IsAdmin = true
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name:        "Test Project",
		Description: "A test project for testing purposes",
	}
}

// CreatedBy creates a project created by the given user
func (f *ProjectFactory) CreatedBy(user *models.User) *models.Project {
	project := f.Create()
	project.CreatedByID = user.ID
	project.CreatedBy = user
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string, creator *models.User) *models.Project {
	project := f.CreatedBy(creator)
	project.Name = name
	return project
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company *CompanyFactory
	User    *UserFactory
	Project *ProjectFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company: NewCompanyFactory(),
		User:    NewUserFactory(),
		Project: NewProjectFactory(),
	}
}

// CreateCompanyHierarchy creates an owner company with one client, an owner admin and a client admin
func (fs *FactorySet) CreateCompanyHierarchy() (owner, client *models.Company, ownerAdmin, clientAdmin *models.User) {
	owner = fs.Company.Owner()
	client = fs.Company.ClientOf(owner.ID)
	ownerAdmin = fs.User.AdminOf(owner.ID)
	clientAdmin = fs.User.AdminOf(client.ID)
	return owner, client, ownerAdmin, clientAdmin
}

// ActorFor builds an actor for user evaluated against owner
func ActorFor(user *models.User, owner *models.Company) models.Actor {
	return models.Actor{User: user, OwnerID: owner.ID}
}

// PNGImage encodes a solid width x height PNG
func PNGImage(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 20, G: 120, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// PNGHeader returns a PNG that declares a width x height RGBA image but carries no pixel data
func PNGHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha
	writePNGChunk(&buf, "IHDR", ihdr)
	writePNGChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func writePNGChunk(buf *bytes.Buffer, kind string, data []byte) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(kind)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(kind))
	crc.Write(data)
	_ = binary.Write(buf, binary.BigEndian, crc.Sum32())
}
