package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"assignment-admin-backend/internal/database/models"
	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/ingest"
	"assignment-admin-backend/internal/mocks"
	"assignment-admin-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEmployees *mocks.MockEmployeeRepositoryInterface
	mockUsers     *mocks.MockUserRepositoryInterface
	mockDetails   *mocks.MockOrganizationDetailRepositoryInterface
	service       *service.ImportService
	ctx           context.Context
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDetails = mocks.NewMockOrganizationDetailRepositoryInterface(suite.ctrl)
	suite.service = service.NewImportService(suite.mockEmployees, suite.mockUsers, suite.mockDetails, service.ImportOptions{
		MaxUploadBytes: 1024,
		BcryptCost:     bcrypt.MinCost,
	})
	suite.ctx = context.Background()
}

func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImportServiceTestSuite) TestImportEmployees_SkipsDuplicates() {
	csv := "Worker ID,First Name,Last Name,Email\nW1,Ann,Lee,ann@example.com\nW2,Bob,Ray,bob@example.com\n"

	suite.mockEmployees.EXPECT().ExistsExact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Employee) (bool, error) {
			return e.EmployeeID == "W2", nil
		}).Times(2)
	suite.mockEmployees.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Employee) error {
			assert.Equal(suite.T(), "W1", e.EmployeeID)
			require.NotNil(suite.T(), e.Email)
			assert.Equal(suite.T(), "ann@example.com", *e.Email)
			return nil
		}).Times(1)

	resp, err := suite.service.Import(suite.ctx, ingest.KindEmployee, "employees.csv", strings.NewReader(csv))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Imported)
	assert.Equal(suite.T(), "Successfully imported 1 employees", resp.Message)
}

func (suite *ImportServiceTestSuite) TestImportUsers_HashesPassword() {
	csv := "email|worker id|first name|last name|password|role\nann@example.com|W1|Ann|Lee|s3cret|admin\n"

	suite.mockUsers.EXPECT().ExistsExact(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	suite.mockUsers.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.NotNil(suite.T(), u.PasswordHash)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("s3cret")))
			assert.Equal(suite.T(), models.RoleAdmin, u.Role)
			return nil
		}).Times(1)

	resp, err := suite.service.Import(suite.ctx, ingest.KindUser, "users.csv", strings.NewReader(csv))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Successfully imported 1 users", resp.Message)
}

func (suite *ImportServiceTestSuite) TestImportOrganizationDetails_SaveErrorIsSkipped() {
	csv := "Organization,Organization Type,Reference ID\nNorth,Retail Branch,R-1\nSouth,Retail Branch,R-2\n"

	gomock.InOrder(
		suite.mockDetails.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("value too long")),
		suite.mockDetails.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	resp, err := suite.service.Import(suite.ctx, ingest.KindOrganizationDetail, "details.csv", strings.NewReader(csv))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Imported)
	assert.Equal(suite.T(), "Successfully imported 1 organization details", resp.Message)
}

func (suite *ImportServiceTestSuite) TestImport_TooLarge() {
	big := "Worker ID\n" + strings.Repeat("W1\n", 400)

	_, err := suite.service.Import(suite.ctx, ingest.KindEmployee, "big.csv", strings.NewReader(big))

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportFileTooLarge)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

func (suite *ImportServiceTestSuite) TestImport_RejectsBinary() {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	_, err := suite.service.Import(suite.ctx, ingest.KindEmployee, "photo.csv", bytes.NewReader(png))

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedImportFile)
}

func (suite *ImportServiceTestSuite) TestImport_EmptyFile() {
	_, err := suite.service.Import(suite.ctx, ingest.KindEmployee, "empty.csv", strings.NewReader(""))

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyImportFile)
}

func (suite *ImportServiceTestSuite) TestImport_MissingRequiredColumns() {
	_, err := suite.service.Import(suite.ctx, ingest.KindUser, "users.csv", strings.NewReader("email,first name\na@b.c,Ann\n"))

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
	assert.Contains(suite.T(), err.Error(), "CSV must contain columns for:")
}

func (suite *ImportServiceTestSuite) TestImport_UnknownKind() {
	_, err := suite.service.Import(suite.ctx, ingest.Kind("contractors"), "x.csv", strings.NewReader("a,b\n1,2\n"))

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
