package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"collab-backend/internal/database/models"
	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/locale"
	"collab-backend/internal/mocks"
	"collab-backend/internal/repository"
	"collab-backend/internal/service"
	"collab-backend/internal/storage"
	"collab-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	files           *storage.MemoryStorage
	companyService  *service.CompanyService

	factories   *testutils.FactorySet
	owner       *models.Company
	client      *models.Company
	ownerAdmin  *models.User
	clientAdmin *models.User
	ctx         context.Context
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.files = storage.NewMemoryStorage()

	suite.companyService = service.NewCompanyService(
		suite.mockCompanyRepo,
		suite.mockUserRepo,
		suite.mockProjectRepo,
		service.NewOwnerDirectory(suite.mockCompanyRepo),
		service.NewLogoService(suite.files, 50, 50, 0, 1<<20),
		service.NewValidator(),
	)

	suite.factories = testutils.NewFactorySet()
	suite.owner, suite.client, suite.ownerAdmin, suite.clientAdmin = suite.factories.CreateCompanyHierarchy()
	suite.ctx = context.Background()
}

func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyServiceTestSuite) ownerActor() models.Actor {
	return testutils.ActorFor(suite.ownerAdmin, suite.owner)
}

func (suite *CompanyServiceTestSuite) clientActor() models.Actor {
	return testutils.ActorFor(suite.clientAdmin, suite.owner)
}

func (suite *CompanyServiceTestSuite) expectOwner() {
	owner := *suite.owner
	suite.mockCompanyRepo.EXPECT().GetOwner().Return(&owner, nil).AnyTimes()
}

func (suite *CompanyServiceTestSuite) expectCompany(company *models.Company) {
	c := *company
	suite.mockCompanyRepo.EXPECT().GetByID(company.ID).Return(&c, nil)
}

func (suite *CompanyServiceTestSuite) storeLogo(company *models.Company) string {
	ref := "logos/" + uuid.NewString() + ".png"
	_, err := suite.files.Upload(suite.ctx, bytes.NewReader(testutils.PNGImage(10, 10)), ref, "image/png")
	require.NoError(suite.T(), err)
	company.LogoFile = &ref
	return ref
}

func (suite *CompanyServiceTestSuite) TestActor_Success() {
	suite.expectOwner()
	suite.mockUserRepo.EXPECT().GetByID(suite.ownerAdmin.ID).Return(suite.ownerAdmin, nil)

	actor, err := suite.companyService.Actor(suite.ctx, suite.ownerAdmin.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.owner.ID, actor.OwnerID)
	assert.True(suite.T(), actor.MemberOfOwner())
}

func (suite *CompanyServiceTestSuite) TestActor_UnknownUser() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.companyService.Actor(suite.ctx, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingUser)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *CompanyServiceTestSuite) TestActor_NoOwnerCompany() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ownerAdmin.ID).Return(suite.ownerAdmin, nil)
	suite.mockCompanyRepo.EXPECT().GetOwner().Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.companyService.Actor(suite.ctx, suite.ownerAdmin.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestList_OwnerAndClients() {
	suite.expectOwner()
	other := suite.factories.Company.ClientOf(suite.owner.ID)
	suite.mockCompanyRepo.EXPECT().GetClients(suite.owner.ID).Return([]models.Company{*suite.client, *other}, nil)

	resp, err := suite.companyService.List(suite.ctx, suite.clientActor())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.owner.ID, resp.Owner.ID)
	assert.True(suite.T(), resp.Owner.IsOwner)
	assert.Len(suite.T(), resp.Clients, 2)
	assert.False(suite.T(), resp.Clients[0].IsOwner)
	assert.Equal(suite.T(), models.DefaultLogoURL, resp.Clients[0].LogoURL)
}

func (suite *CompanyServiceTestSuite) TestSelectList() {
	suite.mockCompanyRepo.EXPECT().GetAll().Return([]models.Company{*suite.client, *suite.owner}, nil)

	options, err := suite.companyService.SelectList(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.CompanyOption{
		{ID: suite.client.ID, Name: suite.client.Name},
		{ID: suite.owner.ID, Name: suite.owner.Name},
	}, options)
}

func (suite *CompanyServiceTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.mockCompanyRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.companyService.Get(suite.ctx, suite.ownerActor(), id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestGet_RepositoryFailure() {
	suite.mockCompanyRepo.EXPECT().GetByID(suite.client.ID).Return(nil, errors.New("connection reset"))

	_, err := suite.companyService.Get(suite.ctx, suite.ownerActor(), suite.client.ID)

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *CompanyServiceTestSuite) TestGet_Success() {
	suite.client.Timezone = 5.5
	suite.expectCompany(suite.client)

	resp, err := suite.companyService.Get(suite.ctx, suite.clientActor(), suite.client.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.client.Name, resp.Name)
	assert.Equal(suite.T(), "Chennai", resp.TimezoneName)
	assert.Equal(suite.T(), locale.CountryName("US"), resp.CountryName)
	assert.NotEmpty(suite.T(), resp.CountryName)
}

func (suite *CompanyServiceTestSuite) TestCreate_Success() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		company.ID = uuid.New()
		return nil
	})

	resp, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
		Name:         "Acme",
		Email:        "hello@acme.test",
		CountryName:  "Germany",
		TimezoneName: "Chennai",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", resp.Name)
	require.NotNil(suite.T(), resp.ClientOfID)
	assert.Equal(suite.T(), suite.owner.ID, *resp.ClientOfID)
	require.NotNil(suite.T(), resp.CreatedByID)
	assert.Equal(suite.T(), suite.ownerAdmin.ID, *resp.CreatedByID)
	assert.Equal(suite.T(), "DE", resp.CountryCode)
	assert.Equal(suite.T(), 5.5, resp.Timezone)
	assert.False(suite.T(), resp.IsOwner)
}

func (suite *CompanyServiceTestSuite) TestCreate_UnknownCountryNameIsIgnored() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
		Name:        "Acme",
		CountryName: "Atlantis",
	})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.CountryCode)
}

func (suite *CompanyServiceTestSuite) TestCreate_CountryCodeMustBeISO() {
	for _, code := range []string{"XX", "UK", "uk"} {
		suite.Run(code, func() {
			suite.expectOwner()
			suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)

			_, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
				Name:        "Acme",
				CountryCode: code,
			})

			require.True(suite.T(), apperrors.IsValidation(err))
			fields := apperrors.FieldErrors(err)
			require.Len(suite.T(), fields, 1)
			assert.Equal(suite.T(), "country_code", fields[0].Field)
		})
	}
}

func (suite *CompanyServiceTestSuite) TestCreate_LowercaseCountryCodeIsNormalized() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		assert.Equal(suite.T(), "DE", company.Country)
		return nil
	})

	resp, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
		Name:        "Acme",
		CountryCode: "de",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "DE", resp.CountryCode)
	assert.Equal(suite.T(), locale.CountryName("DE"), resp.CountryName)
}

func (suite *CompanyServiceTestSuite) TestUpdate_AliasCountryCodeIsRejected() {
	suite.expectCompany(suite.client)

	code := "UK"
	_, err := suite.companyService.Update(suite.ctx, suite.clientActor(), suite.client.ID, &service.UpdateCompanyRequest{CountryCode: &code})

	require.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "country_code", apperrors.FieldErrors(err)[0].Field)
}

func (suite *CompanyServiceTestSuite) TestCreate_ClientAdminIsRejected() {
	_, err := suite.companyService.Create(suite.ctx, suite.clientActor(), &service.CreateCompanyRequest{Name: "Acme"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientPermissions)
}

func (suite *CompanyServiceTestSuite) TestCreate_NonAdminIsRejected() {
	member := suite.factories.User.WithCompany(suite.owner.ID)

	_, err := suite.companyService.Create(suite.ctx, testutils.ActorFor(member, suite.owner), &service.CreateCompanyRequest{Name: "Acme"})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *CompanyServiceTestSuite) TestCreate_MissingUser() {
	_, err := suite.companyService.Create(suite.ctx, models.Actor{OwnerID: suite.owner.ID}, &service.CreateCompanyRequest{Name: "Acme"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingUser)
}

func (suite *CompanyServiceTestSuite) TestCreate_ValidationErrors() {
	_, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
		Email: "not-an-email",
	})

	require.True(suite.T(), apperrors.IsValidation(err))
	fields := map[string]string{}
	for _, fe := range apperrors.FieldErrors(err) {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(suite.T(), "can't be blank", fields["name"])
	assert.Equal(suite.T(), "is not a valid email address", fields["email"])
}

func (suite *CompanyServiceTestSuite) TestCreate_UnknownTimezone() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{
		Name:         "Acme",
		TimezoneName: "Middle Earth",
	})

	require.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "timezone_name", apperrors.FieldErrors(err)[0].Field)
}

func (suite *CompanyServiceTestSuite) TestCreate_DuplicateName() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName(suite.client.Name).Return(suite.client, nil)

	_, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{Name: suite.client.Name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestCreate_UniqueViolationOnInsert() {
	suite.expectOwner()
	suite.mockCompanyRepo.EXPECT().GetByName("Acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.companyService.Create(suite.ctx, suite.ownerActor(), &service.CreateCompanyRequest{Name: "Acme"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestUpdate_PartialFields() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		assert.Equal(suite.T(), "Berlin", company.City)
		assert.Equal(suite.T(), suite.client.Email, company.Email)
		return nil
	})

	city := "Berlin"
	resp, err := suite.companyService.Update(suite.ctx, suite.clientActor(), suite.client.ID, &service.UpdateCompanyRequest{City: &city})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Berlin", resp.City)
	require.NotNil(suite.T(), resp.UpdatedByID)
	assert.Equal(suite.T(), suite.clientAdmin.ID, *resp.UpdatedByID)
}

func (suite *CompanyServiceTestSuite) TestUpdate_Rename() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().GetByName("Renamed").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).Return(nil)

	name := " Renamed "
	resp, err := suite.companyService.Update(suite.ctx, suite.ownerActor(), suite.client.ID, &service.UpdateCompanyRequest{Name: &name})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", resp.Name)
}

func (suite *CompanyServiceTestSuite) TestUpdate_BlankName() {
	suite.expectCompany(suite.client)

	name := "   "
	_, err := suite.companyService.Update(suite.ctx, suite.ownerActor(), suite.client.ID, &service.UpdateCompanyRequest{Name: &name})

	require.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "name", apperrors.FieldErrors(err)[0].Field)
}

func (suite *CompanyServiceTestSuite) TestUpdate_OtherClientAdminIsRejected() {
	other := suite.factories.Company.ClientOf(suite.owner.ID)
	suite.expectCompany(other)

	city := "Berlin"
	_, err := suite.companyService.Update(suite.ctx, suite.clientActor(), other.ID, &service.UpdateCompanyRequest{City: &city})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientPermissions)
}

func (suite *CompanyServiceTestSuite) TestUpdate_OwnerInvalidatesCache() {
	suite.mockCompanyRepo.EXPECT().GetOwner().Return(suite.owner, nil).Times(2)
	suite.mockUserRepo.EXPECT().GetByID(suite.ownerAdmin.ID).Return(suite.ownerAdmin, nil).Times(2)
	suite.expectCompany(suite.owner)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).Return(nil)

	_, err := suite.companyService.Actor(suite.ctx, suite.ownerAdmin.ID)
	require.NoError(suite.T(), err)

	city := "Paris"
	_, err = suite.companyService.Update(suite.ctx, suite.ownerActor(), suite.owner.ID, &service.UpdateCompanyRequest{City: &city})
	require.NoError(suite.T(), err)

	_, err = suite.companyService.Actor(suite.ctx, suite.ownerAdmin.ID)
	assert.NoError(suite.T(), err)
}

func (suite *CompanyServiceTestSuite) TestHideWelcomeInfo_Success() {
	suite.expectCompany(suite.owner)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		assert.True(suite.T(), company.HideWelcomeInfo)
		return nil
	})

	resp, err := suite.companyService.HideWelcomeInfo(suite.ctx, suite.ownerActor(), suite.owner.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.HideWelcomeInfo)
}

func (suite *CompanyServiceTestSuite) TestHideWelcomeInfo_SaveFailureIsIgnored() {
	suite.expectCompany(suite.owner)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).Return(errors.New("disk full"))

	resp, err := suite.companyService.HideWelcomeInfo(suite.ctx, suite.ownerActor(), suite.owner.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.HideWelcomeInfo)
}

func (suite *CompanyServiceTestSuite) TestHideWelcomeInfo_ClientCompany() {
	suite.expectCompany(suite.client)

	_, err := suite.companyService.HideWelcomeInfo(suite.ctx, suite.ownerActor(), suite.client.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCompany)
}

func (suite *CompanyServiceTestSuite) TestDestroy_ReleasesLogo() {
	suite.storeLogo(suite.client)
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().Delete(suite.client.ID, gomock.Any()).DoAndReturn(func(id uuid.UUID, release func() error) error {
		return release()
	})

	result, err := suite.companyService.Destroy(suite.ctx, suite.ownerActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Deleted)
	assert.NoError(suite.T(), result.Cause)
	assert.Equal(suite.T(), 0, suite.files.Len())
}

func (suite *CompanyServiceTestSuite) TestDestroy_Blocked() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().Delete(suite.client.ID, gomock.Any()).
		Return(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	result, err := suite.companyService.Destroy(suite.ctx, suite.ownerActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Deleted)
	assert.True(suite.T(), apperrors.IsOperationFailed(result.Cause))
	assert.ErrorIs(suite.T(), result.Cause, apperrors.ErrReferenced)
	assert.True(suite.T(), repository.IsForeignKeyViolation(result.Cause))
}

func (suite *CompanyServiceTestSuite) TestDestroy_DatabaseFailureIsNotAReference() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().Delete(suite.client.ID, gomock.Any()).Return(errors.New("connection reset"))

	result, err := suite.companyService.Destroy(suite.ctx, suite.ownerActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Deleted)
	assert.ErrorContains(suite.T(), result.Cause, "connection reset")
	assert.NotErrorIs(suite.T(), result.Cause, apperrors.ErrReferenced)
}

func (suite *CompanyServiceTestSuite) TestDestroy_OwnerWithClientsIsKept() {
	suite.expectCompany(suite.owner)
	suite.mockCompanyRepo.EXPECT().GetClients(suite.owner.ID).Return([]models.Company{*suite.client}, nil)

	result, err := suite.companyService.Destroy(suite.ctx, suite.ownerActor(), suite.owner.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Deleted)
	assert.ErrorIs(suite.T(), result.Cause, apperrors.ErrReferenced)
}

func (suite *CompanyServiceTestSuite) TestDestroy_OwnerWithoutClients() {
	suite.expectCompany(suite.owner)
	suite.mockCompanyRepo.EXPECT().GetClients(suite.owner.ID).Return([]models.Company{}, nil)
	suite.mockCompanyRepo.EXPECT().Delete(suite.owner.ID, gomock.Any()).Return(nil)

	result, err := suite.companyService.Destroy(suite.ctx, suite.ownerActor(), suite.owner.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Deleted)
}

func (suite *CompanyServiceTestSuite) TestDestroy_ReleaseFailureKeepsCompany() {
	ref := "logos/missing.png"
	suite.client.LogoFile = &ref
	suite.expectCompany(suite.client)

	failing := service.NewLogoService(failingStorage{err: errors.New("bucket unavailable")}, 50, 50, 0, 0)
	companyService := service.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo, suite.mockProjectRepo,
		service.NewOwnerDirectory(suite.mockCompanyRepo), failing, service.NewValidator())
	suite.mockCompanyRepo.EXPECT().Delete(suite.client.ID, gomock.Any()).DoAndReturn(func(id uuid.UUID, release func() error) error {
		return release()
	})

	result, err := companyService.Destroy(suite.ctx, suite.ownerActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Deleted)
	assert.ErrorContains(suite.T(), result.Cause, "bucket unavailable")
}

func (suite *CompanyServiceTestSuite) TestDestroy_ClientAdminIsRejected() {
	suite.expectCompany(suite.client)

	_, err := suite.companyService.Destroy(suite.ctx, suite.clientActor(), suite.client.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientPermissions)
}

func (suite *CompanyServiceTestSuite) TestPermissions_NoProjects() {
	suite.expectCompany(suite.client)
	suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{}, nil)

	_, err := suite.companyService.Permissions(suite.ctx, suite.ownerActor(), suite.client.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoProjects)
}

func (suite *CompanyServiceTestSuite) TestPermissions_OwnerCannotBeManaged() {
	suite.expectCompany(suite.owner)

	_, err := suite.companyService.Permissions(suite.ctx, suite.ownerActor(), suite.owner.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientPermissions)
}

func (suite *CompanyServiceTestSuite) TestPermissions_Lists() {
	member := suite.factories.Project.WithName("Alpha", suite.ownerAdmin)
	member.Users = []models.User{*suite.ownerAdmin}
	member.Companies = []models.Company{*suite.client}
	foreign := suite.factories.Project.WithName("Beta", suite.ownerAdmin)

	suite.expectCompany(suite.client)
	suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{*member, *foreign}, nil)

	resp, err := suite.companyService.Permissions(suite.ctx, suite.ownerActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Projects, 2)
	assert.Equal(suite.T(), service.ProjectPermission{ID: member.ID, Name: "Alpha", Associated: true, Manageable: true}, resp.Projects[0])
	assert.Equal(suite.T(), service.ProjectPermission{ID: foreign.ID, Name: "Beta", Associated: false, Manageable: false}, resp.Projects[1])
}

func (suite *CompanyServiceTestSuite) TestUpdatePermissions_TogglesMemberProjectsOnly() {
	join := suite.factories.Project.WithName("Join", suite.ownerAdmin)
	join.Users = []models.User{*suite.ownerAdmin}

	leave := suite.factories.Project.WithName("Leave", suite.ownerAdmin)
	leave.Users = []models.User{*suite.ownerAdmin}
	leave.Companies = []models.Company{*suite.client}

	already := suite.factories.Project.WithName("Already", suite.ownerAdmin)
	already.Users = []models.User{*suite.ownerAdmin}
	already.Companies = []models.Company{*suite.client}

	foreign := suite.factories.Project.WithName("Foreign", suite.ownerAdmin)

	suite.expectCompany(suite.client)
	gomock.InOrder(
		suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{*already, *foreign, *join, *leave}, nil),
		suite.mockProjectRepo.EXPECT().AddCompany(join.ID, suite.client.ID).Return(nil),
		suite.mockProjectRepo.EXPECT().RemoveCompany(leave.ID, suite.client.ID).Return(nil),
		suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{*already, *foreign, *join}, nil),
	)

	resp, err := suite.companyService.UpdatePermissions(suite.ctx, suite.ownerActor(), suite.client.ID, &service.UpdatePermissionsRequest{
		ProjectIDs: []uuid.UUID{already.ID, join.ID, foreign.ID},
	})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Projects, 3)
}

func (suite *CompanyServiceTestSuite) TestUpdatePermissions_RepositoryFailure() {
	join := suite.factories.Project.WithName("Join", suite.ownerAdmin)
	join.Users = []models.User{*suite.ownerAdmin}

	suite.expectCompany(suite.client)
	suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{*join}, nil)
	suite.mockProjectRepo.EXPECT().AddCompany(join.ID, suite.client.ID).Return(errors.New("deadlock"))

	_, err := suite.companyService.UpdatePermissions(suite.ctx, suite.ownerActor(), suite.client.ID, &service.UpdatePermissionsRequest{
		ProjectIDs: []uuid.UUID{join.ID},
	})

	assert.ErrorContains(suite.T(), err, "deadlock")
}

func (suite *CompanyServiceTestSuite) TestSetLogo_Success() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().UpdateLogo(suite.client.ID, gomock.Not(gomock.Nil())).Return(nil)

	resp, err := suite.companyService.SetLogo(suite.ctx, suite.clientActor(), suite.client.ID, pngUpload(200, 100))

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.HasLogo)
	assert.Contains(suite.T(), resp.LogoURL, suite.client.ID.String())
	assert.Equal(suite.T(), 1, suite.files.Len())
}

func (suite *CompanyServiceTestSuite) TestSetLogo_ReplacesPreviousBlob() {
	old := suite.storeLogo(suite.client)
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().UpdateLogo(suite.client.ID, gomock.Any()).Return(nil)

	_, err := suite.companyService.SetLogo(suite.ctx, suite.ownerActor(), suite.client.ID, pngUpload(20, 20))

	require.NoError(suite.T(), err)
	exists, err := suite.files.Exists(suite.ctx, old)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
	assert.Equal(suite.T(), 1, suite.files.Len())
}

func (suite *CompanyServiceTestSuite) TestSetLogo_InvalidData() {
	old := suite.storeLogo(suite.client)
	suite.expectCompany(suite.client)

	_, err := suite.companyService.SetLogo(suite.ctx, suite.ownerActor(), suite.client.ID, &service.LogoUpload{
		ContentType: "image/png",
		Size:        4,
		Reader:      bytes.NewReader([]byte("nope")),
	})

	require.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "Invalid data", apperrors.FieldErrors(err)[0].Message)
	exists, _ := suite.files.Exists(suite.ctx, old)
	assert.True(suite.T(), exists)
}

func (suite *CompanyServiceTestSuite) TestSetLogo_MissingUpload() {
	suite.expectCompany(suite.client)

	_, err := suite.companyService.SetLogo(suite.ctx, suite.ownerActor(), suite.client.ID, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingLogo)
}

func (suite *CompanyServiceTestSuite) TestSetLogo_ReferenceUpdateFailure() {
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().UpdateLogo(suite.client.ID, gomock.Any()).Return(errors.New("connection lost"))

	_, err := suite.companyService.SetLogo(suite.ctx, suite.ownerActor(), suite.client.ID, pngUpload(20, 20))

	assert.True(suite.T(), apperrors.IsOperationFailed(err))
	assert.Equal(suite.T(), 0, suite.files.Len())
}

func (suite *CompanyServiceTestSuite) TestSetLogo_StoreFailureClearsReleasedReference() {
	ref := "logos/old.png"
	suite.client.LogoFile = &ref
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().UpdateLogo(suite.client.ID, nil).Return(nil)

	failing := service.NewLogoService(failingStorage{uploadErr: errors.New("quota exceeded")}, 50, 50, 0, 0)
	companyService := service.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo, suite.mockProjectRepo,
		service.NewOwnerDirectory(suite.mockCompanyRepo), failing, service.NewValidator())

	_, err := companyService.SetLogo(suite.ctx, suite.ownerActor(), suite.client.ID, pngUpload(20, 20))

	assert.True(suite.T(), apperrors.IsOperationFailed(err))
}

func (suite *CompanyServiceTestSuite) TestClearLogo() {
	suite.storeLogo(suite.client)
	suite.expectCompany(suite.client)
	suite.mockCompanyRepo.EXPECT().UpdateLogo(suite.client.ID, nil).Return(nil)

	resp, err := suite.companyService.ClearLogo(suite.ctx, suite.clientActor(), suite.client.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.HasLogo)
	assert.Equal(suite.T(), models.DefaultLogoURL, resp.LogoURL)
	assert.Equal(suite.T(), 0, suite.files.Len())
}

func (suite *CompanyServiceTestSuite) TestLogo() {
	suite.storeLogo(suite.client)
	suite.expectCompany(suite.client)

	rc, err := suite.companyService.Logo(suite.ctx, suite.client.ID)
	require.NoError(suite.T(), err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), data)
}

func (suite *CompanyServiceTestSuite) TestLogo_NoLogo() {
	suite.expectCompany(suite.client)

	_, err := suite.companyService.Logo(suite.ctx, suite.client.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLogoNotFound)
}

func (suite *CompanyServiceTestSuite) TestUsersOnProject() {
	project := suite.factories.Project.CreatedBy(suite.ownerAdmin)
	suite.expectCompany(suite.client)
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockUserRepo.EXPECT().GetByCompanyOnProject(suite.client.ID, project.ID).Return([]models.User{*suite.clientAdmin}, nil)

	users, err := suite.companyService.UsersOnProject(suite.ctx, suite.ownerActor(), suite.client.ID, project.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 1)
	assert.Equal(suite.T(), suite.clientAdmin.Username, users[0].Username)
	assert.True(suite.T(), users[0].IsAdmin)
}

func (suite *CompanyServiceTestSuite) TestUsersOnProject_UnknownProject() {
	projectID := uuid.New()
	suite.expectCompany(suite.client)
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.companyService.UsersOnProject(suite.ctx, suite.ownerActor(), suite.client.ID, projectID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func pngUpload(width, height int) *service.LogoUpload {
	data := testutils.PNGImage(width, height)
	return &service.LogoUpload{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}
}

// failingStorage fails every call with err, and uploads with uploadErr when set
type failingStorage struct {
	err       error
	uploadErr error
}

func (f failingStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "", f.err
}

func (f failingStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, f.err
}

func (f failingStorage) Delete(ctx context.Context, path string) error {
	return f.err
}

func (f failingStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, f.err
}
