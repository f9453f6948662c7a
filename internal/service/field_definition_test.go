package service_test

import (
	"fmt"
	"testing"

	"assignment-admin-backend/internal/database/models"
	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/mocks"
	"assignment-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type FieldDefinitionServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockFieldDefinitionRepositoryInterface
	mockOrgType *mocks.MockOrganizationTypeRepositoryInterface
	service     *service.FieldDefinitionService
}

func (suite *FieldDefinitionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockFieldDefinitionRepositoryInterface(suite.ctrl)
	suite.mockOrgType = mocks.NewMockOrganizationTypeRepositoryInterface(suite.ctrl)
	suite.service = service.NewFieldDefinitionService(suite.mockRepo, suite.mockOrgType, validator.New())
}

func (suite *FieldDefinitionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FieldDefinitionServiceTestSuite) TestCreate_Success() {
	orgTypeID := uuid.New()
	req := &service.CreateFieldDefinitionRequest{
		OrganizationTypeID: orgTypeID,
		FieldKey:           "can_approve",
		FieldTitle:         "Can approve",
		DisplayOrder:       1,
	}

	suite.mockOrgType.EXPECT().GetByID(orgTypeID).Return(&models.OrganizationType{BaseModel: models.BaseModel{ID: orgTypeID}}, nil).Times(1)
	suite.mockRepo.EXPECT().ExistsByOrganizationTypeAndKey(orgTypeID, "can_approve").Return(false, nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "can_approve", resp.FieldKey)
	assert.Equal(suite.T(), orgTypeID, resp.OrganizationTypeID)
	assert.True(suite.T(), resp.Active)
}

func (suite *FieldDefinitionServiceTestSuite) TestCreate_DuplicateKeyWithinType() {
	orgTypeID := uuid.New()
	req := &service.CreateFieldDefinitionRequest{OrganizationTypeID: orgTypeID, FieldKey: "can_approve", FieldTitle: "Can approve"}

	suite.mockOrgType.EXPECT().GetByID(orgTypeID).Return(&models.OrganizationType{BaseModel: models.BaseModel{ID: orgTypeID}}, nil).Times(1)
	suite.mockRepo.EXPECT().ExistsByOrganizationTypeAndKey(orgTypeID, "can_approve").Return(true, nil).Times(1)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldDefinitionExists)
	assert.Equal(suite.T(), "assignment field already exists with this key for this organization type", err.Error())
}

func (suite *FieldDefinitionServiceTestSuite) TestCreate_KeyTakenBetweenCheckAndInsert() {
	orgTypeID := uuid.New()
	req := &service.CreateFieldDefinitionRequest{OrganizationTypeID: orgTypeID, FieldKey: "can_approve", FieldTitle: "Can approve"}

	suite.mockOrgType.EXPECT().GetByID(orgTypeID).Return(&models.OrganizationType{BaseModel: models.BaseModel{ID: orgTypeID}}, nil).Times(1)
	suite.mockRepo.EXPECT().ExistsByOrganizationTypeAndKey(orgTypeID, "can_approve").Return(false, nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_field_definitions_type_key"}).Times(1)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldDefinitionExists)
}

func (suite *FieldDefinitionServiceTestSuite) TestCreate_UnknownOrganizationType() {
	orgTypeID := uuid.New()
	req := &service.CreateFieldDefinitionRequest{OrganizationTypeID: orgTypeID, FieldKey: "can_approve", FieldTitle: "Can approve"}

	suite.mockOrgType.EXPECT().GetByID(orgTypeID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTypeNotFound)
}

func (suite *FieldDefinitionServiceTestSuite) TestCreate_MissingKey() {
	_, err := suite.service.Create(&service.CreateFieldDefinitionRequest{OrganizationTypeID: uuid.New(), FieldTitle: "Can approve"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FieldDefinitionServiceTestSuite) TestUpdate_KeyChangeCollides() {
	id := uuid.New()
	orgTypeID := uuid.New()
	newKey := "can_sign"
	existing := &models.AssignmentFieldDefinition{BaseModel: models.BaseModel{ID: id}, OrganizationTypeID: orgTypeID, FieldKey: "can_approve"}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().ExistsByOrganizationTypeAndKey(orgTypeID, newKey).Return(true, nil).Times(1)

	_, err := suite.service.Update(id, &service.UpdateFieldDefinitionRequest{FieldKey: &newKey})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldDefinitionExists)
}

func (suite *FieldDefinitionServiceTestSuite) TestUpdate_KeyTakenBetweenCheckAndSave() {
	id := uuid.New()
	orgTypeID := uuid.New()
	newKey := "can_sign"
	existing := &models.AssignmentFieldDefinition{BaseModel: models.BaseModel{ID: id}, OrganizationTypeID: orgTypeID, FieldKey: "can_approve"}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().ExistsByOrganizationTypeAndKey(orgTypeID, newKey).Return(false, nil).Times(1)
	suite.mockRepo.EXPECT().Update(existing).Return(fmt.Errorf("save: %w", gorm.ErrDuplicatedKey)).Times(1)

	_, err := suite.service.Update(id, &service.UpdateFieldDefinitionRequest{FieldKey: &newKey})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldDefinitionExists)
}

func (suite *FieldDefinitionServiceTestSuite) TestUpdate_ReactivatesField() {
	id := uuid.New()
	active := true
	title := "Can approve invoices"
	existing := &models.AssignmentFieldDefinition{BaseModel: models.BaseModel{ID: id}, FieldKey: "can_approve", Active: false}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().Update(existing).Return(nil).Times(1)

	resp, err := suite.service.Update(id, &service.UpdateFieldDefinitionRequest{Active: &active, FieldTitle: &title})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Active)
	assert.Equal(suite.T(), title, resp.FieldTitle)
}

func (suite *FieldDefinitionServiceTestSuite) TestListActiveBySlug() {
	orgTypeID := uuid.New()
	defs := []models.AssignmentFieldDefinition{
		{FieldKey: "can_approve", DisplayOrder: 1, Active: true, OrganizationTypeID: orgTypeID},
		{FieldKey: "can_sign", DisplayOrder: 2, Active: true, OrganizationTypeID: orgTypeID},
	}

	suite.mockOrgType.EXPECT().GetBySlug("retail").Return(&models.OrganizationType{BaseModel: models.BaseModel{ID: orgTypeID}}, nil).Times(1)
	suite.mockRepo.EXPECT().GetActiveByOrganizationType(orgTypeID).Return(defs, nil).Times(1)

	resp, err := suite.service.ListActiveBySlug("retail")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "can_approve", resp[0].FieldKey)
}

func (suite *FieldDefinitionServiceTestSuite) TestDeletes_MapNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().SoftDelete(id).Return(gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().HardDelete(id).Return(gorm.ErrRecordNotFound).Times(1)

	assert.ErrorIs(suite.T(), suite.service.SoftDelete(id), apperrors.ErrFieldDefinitionNotFound)
	assert.ErrorIs(suite.T(), suite.service.HardDelete(id), apperrors.ErrFieldDefinitionNotFound)
}

func TestFieldDefinitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FieldDefinitionServiceTestSuite))
}
