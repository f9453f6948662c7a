package service_test

import (
	"errors"
	"testing"

	"assignment-admin-backend/internal/database/models"
	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/mocks"
	"assignment-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type OrganizationTypeServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockOrganizationTypeRepositoryInterface
	service   *service.OrganizationTypeService
	validator *validator.Validate
}

func (suite *OrganizationTypeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationTypeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.service = service.NewOrganizationTypeService(suite.mockRepo, suite.validator)
}

func (suite *OrganizationTypeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationTypeServiceTestSuite) TestCreate_Success() {
	req := &service.CreateOrganizationTypeRequest{
		Name:         "Retail Branch",
		Slug:         "retail-branch",
		DisplayName:  "Retail Branches",
		DisplayOrder: 2,
	}

	suite.mockRepo.EXPECT().GetByName("Retail Branch").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().GetBySlug("retail-branch").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(orgType *models.OrganizationType) error {
		orgType.ID = uuid.New()
		return nil
	}).Times(1)

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.Equal(suite.T(), "retail-branch", resp.Slug)
	assert.True(suite.T(), resp.Active)
}

func (suite *OrganizationTypeServiceTestSuite) TestCreate_NameTaken() {
	req := &service.CreateOrganizationTypeRequest{Name: "Retail Branch", Slug: "retail", DisplayName: "Retail"}

	suite.mockRepo.EXPECT().GetByName("Retail Branch").Return(&models.OrganizationType{Name: "Retail Branch"}, nil).Times(1)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeNameExists)
}

func (suite *OrganizationTypeServiceTestSuite) TestCreate_SlugTaken() {
	req := &service.CreateOrganizationTypeRequest{Name: "Retail Branch", Slug: "retail", DisplayName: "Retail"}

	suite.mockRepo.EXPECT().GetByName("Retail Branch").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().GetBySlug("retail").Return(&models.OrganizationType{Slug: "retail"}, nil).Times(1)

	_, err := suite.service.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeSlugExists)
}

func (suite *OrganizationTypeServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.service.Create(&service.CreateOrganizationTypeRequest{Slug: "retail", DisplayName: "Retail"})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "name")
}

func (suite *OrganizationTypeServiceTestSuite) TestCreate_LookupError() {
	req := &service.CreateOrganizationTypeRequest{Name: "Retail Branch", Slug: "retail", DisplayName: "Retail"}
	suite.mockRepo.EXPECT().GetByName("Retail Branch").Return(nil, errors.New("connection reset")).Times(1)

	_, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection reset")
}

func (suite *OrganizationTypeServiceTestSuite) TestUpdate_RenameChecksUniqueness() {
	id := uuid.New()
	newName := "Wholesale"
	existing := &models.OrganizationType{BaseModel: models.BaseModel{ID: id}, Name: "Retail", Slug: "retail", Active: true}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().GetByName(newName).Return(&models.OrganizationType{Name: newName}, nil).Times(1)

	_, err := suite.service.Update(id, &service.UpdateOrganizationTypeRequest{Name: &newName})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeNameExists)
}

func (suite *OrganizationTypeServiceTestSuite) TestUpdate_SameSlugIsNotRechecked() {
	id := uuid.New()
	slug := "retail"
	inactive := false
	existing := &models.OrganizationType{BaseModel: models.BaseModel{ID: id}, Name: "Retail", Slug: slug, Active: true}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().Update(existing).Return(nil).Times(1)

	resp, err := suite.service.Update(id, &service.UpdateOrganizationTypeRequest{Slug: &slug, Active: &inactive})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Active)
}

func (suite *OrganizationTypeServiceTestSuite) TestGetBySlug_NotFound() {
	suite.mockRepo.EXPECT().GetBySlug("missing").Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.GetBySlug("missing")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeNotFound)
}

func (suite *OrganizationTypeServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().SoftDelete(id).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeNotFound)
}

func TestOrganizationTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationTypeServiceTestSuite))
}
