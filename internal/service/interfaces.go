package service

import (
	"context"
	"io"

	"collab-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Actor(ctx context.Context, userID uuid.UUID) (models.Actor, error)
	List(ctx context.Context, actor models.Actor) (*CompanyListResponse, error)
	SelectList(ctx context.Context) ([]CompanyOption, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error)
	Create(ctx context.Context, actor models.Actor, req *CreateCompanyRequest) (*CompanyResponse, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	HideWelcomeInfo(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error)
	Destroy(ctx context.Context, actor models.Actor, id uuid.UUID) (*DestroyResult, error)
	Permissions(ctx context.Context, actor models.Actor, id uuid.UUID) (*PermissionsResponse, error)
	UpdatePermissions(ctx context.Context, actor models.Actor, id uuid.UUID, req *UpdatePermissionsRequest) (*PermissionsResponse, error)
	SetLogo(ctx context.Context, actor models.Actor, id uuid.UUID, upload *LogoUpload) (*CompanyResponse, error)
	ClearLogo(ctx context.Context, actor models.Actor, id uuid.UUID) (*CompanyResponse, error)
	Logo(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
	UsersOnProject(ctx context.Context, actor models.Actor, id, projectID uuid.UUID) ([]UserResponse, error)
}

var _ CompanyServiceInterface = (*CompanyService)(nil)
