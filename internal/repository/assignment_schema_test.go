//go:build integration
// +build integration

package repository

import (
	"testing"

	"assignment-admin-backend/internal/database/models"
	"assignment-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentSchemaTestSuite tests organization types, field definitions,
// assignments and field values against a real database
type AssignmentSchemaTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	orgTypes      *OrganizationTypeRepository
	definitions   *FieldDefinitionRepository
	assignments   *AssignmentRepository
	values        *FieldValueRepository
	details       *OrganizationDetailRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentSchemaTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.orgTypes = NewOrganizationTypeRepository(db)
	suite.definitions = NewFieldDefinitionRepository(db)
	suite.assignments = NewAssignmentRepository(db)
	suite.values = NewFieldValueRepository(db)
	suite.details = NewOrganizationDetailRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentSchemaTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentSchemaTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentSchemaTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentSchemaTestSuite) createOrgType(name, slug string) *models.OrganizationType {
	orgType := suite.factories.OrganizationType.WithName(name, slug)
	suite.Require().NoError(suite.orgTypes.Create(orgType))
	return orgType
}

func (suite *AssignmentSchemaTestSuite) createDefinition(orgTypeID uuid.UUID, key string, order int) *models.AssignmentFieldDefinition {
	def := suite.factories.FieldDefinition.Create(orgTypeID, key, order)
	suite.Require().NoError(suite.definitions.Create(def))
	return def
}

func (suite *AssignmentSchemaTestSuite) createAssignment(orgTypeName string, defs ...*models.AssignmentFieldDefinition) *models.Assignment {
	detail := suite.factories.OrganizationDetail.Create(orgTypeName)
	suite.Require().NoError(suite.details.Save(suite.T().Context(), detail))

	assignment := suite.factories.Assignment.Create(uuid.New(), detail.ID)
	values := make([]models.AssignmentFieldValue, 0, len(defs))
	for _, def := range defs {
		values = append(values, models.AssignmentFieldValue{FieldDefinitionID: def.ID})
	}
	suite.Require().NoError(suite.assignments.CreateWithValues(assignment, values))
	return assignment
}

func (suite *AssignmentSchemaTestSuite) countValues(assignmentID uuid.UUID) int64 {
	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.AssignmentFieldValue{}).
		Where("assignment_id = ?", assignmentID).Count(&count).Error)
	return count
}

// TestOrganizationTypeLookup tests slug lookups and active filtering
func (suite *AssignmentSchemaTestSuite) TestOrganizationTypeLookup() {
	gift := suite.createOrgType("Gift", "gift")
	company := suite.createOrgType("Company", "company")
	suite.Require().NoError(suite.orgTypes.SoftDelete(company.ID))

	found, err := suite.orgTypes.GetBySlug("gift")
	suite.NoError(err)
	suite.Equal(gift.ID, found.ID)

	active, err := suite.orgTypes.GetActive()
	suite.NoError(err)
	suite.Len(active, 1)

	all, err := suite.orgTypes.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)

	suite.ErrorIs(suite.orgTypes.SoftDelete(uuid.New()), gorm.ErrRecordNotFound)
}

// TestFieldKeyUniquePerOrganizationType tests the (organization type, field key) constraint
func (suite *AssignmentSchemaTestSuite) TestFieldKeyUniquePerOrganizationType() {
	gift := suite.createOrgType("Gift", "gift")
	company := suite.createOrgType("Company", "company")

	suite.createDefinition(gift.ID, "can_sign", 1)
	suite.createDefinition(company.ID, "can_sign", 1)

	duplicate := suite.factories.FieldDefinition.Create(gift.ID, "can_sign", 2)
	err := suite.definitions.Create(duplicate)
	suite.Error(err)
	suite.True(IsUniqueViolation(err))

	exists, err := suite.definitions.ExistsByOrganizationTypeAndKey(gift.ID, "can_sign")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.definitions.ExistsByOrganizationTypeAndKey(gift.ID, "can_approve")
	suite.NoError(err)
	suite.False(exists)
}

// TestActiveDefinitionsOrderedByDisplayOrder tests ordering and soft delete filtering
func (suite *AssignmentSchemaTestSuite) TestActiveDefinitionsOrderedByDisplayOrder() {
	gift := suite.createOrgType("Gift", "gift")
	third := suite.createDefinition(gift.ID, "third", 3)
	first := suite.createDefinition(gift.ID, "first", 1)
	hidden := suite.createDefinition(gift.ID, "hidden", 2)
	suite.Require().NoError(suite.definitions.SoftDelete(hidden.ID))

	active, err := suite.definitions.GetActiveByOrganizationType(gift.ID)
	suite.NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal(first.ID, active[0].ID)
	suite.Equal(third.ID, active[1].ID)

	all, err := suite.definitions.GetAllByOrganizationType(gift.ID)
	suite.NoError(err)
	suite.Len(all, 3)
}

// TestHardDeleteRemovesValues tests that hard delete cascades to stored values
func (suite *AssignmentSchemaTestSuite) TestHardDeleteRemovesValues() {
	gift := suite.createOrgType("Gift", "gift")
	keep := suite.createDefinition(gift.ID, "keep", 1)
	drop := suite.createDefinition(gift.ID, "drop", 2)
	assignment := suite.createAssignment("Gift", keep, drop)
	suite.Equal(int64(2), suite.countValues(assignment.ID))

	suite.Require().NoError(suite.definitions.HardDelete(drop.ID))

	suite.Equal(int64(1), suite.countValues(assignment.ID))
	_, err := suite.definitions.GetByID(drop.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.definitions.HardDelete(drop.ID), gorm.ErrRecordNotFound)
}

// TestSoftDeleteKeepsValues tests that soft delete only hides the definition
func (suite *AssignmentSchemaTestSuite) TestSoftDeleteKeepsValues() {
	gift := suite.createOrgType("Gift", "gift")
	def := suite.createDefinition(gift.ID, "flag", 1)
	assignment := suite.createAssignment("Gift", def)

	suite.Require().NoError(suite.definitions.SoftDelete(def.ID))

	suite.Equal(int64(1), suite.countValues(assignment.ID))
}

// TestAssignmentUniquePerSubjectAndDetail tests the subject/detail constraint
func (suite *AssignmentSchemaTestSuite) TestAssignmentUniquePerSubjectAndDetail() {
	suite.createOrgType("Gift", "gift")
	assignment := suite.createAssignment("Gift")

	exists, err := suite.assignments.ExistsForSubject(assignment.SubjectType, assignment.SubjectID, assignment.OrganizationDetailID)
	suite.NoError(err)
	suite.True(exists)

	clash := suite.factories.Assignment.Create(assignment.SubjectID, assignment.OrganizationDetailID)
	suite.Error(suite.assignments.CreateWithValues(clash, nil))

	asUser := suite.factories.Assignment.Create(assignment.SubjectID, assignment.OrganizationDetailID)
	asUser.SubjectType = models.SubjectTypeUser
	suite.NoError(suite.assignments.CreateWithValues(asUser, nil))
}

// TestCreateWithValuesRollsBackOnValueFailure tests that an assignment is not left without values
func (suite *AssignmentSchemaTestSuite) TestCreateWithValuesRollsBackOnValueFailure() {
	suite.createOrgType("Gift", "gift")
	detail := suite.factories.OrganizationDetail.Create("Gift")
	suite.Require().NoError(suite.details.Save(suite.T().Context(), detail))

	assignment := suite.factories.Assignment.Create(uuid.New(), detail.ID)
	values := []models.AssignmentFieldValue{{FieldDefinitionID: uuid.New()}}
	suite.Error(suite.assignments.CreateWithValues(assignment, values))

	_, err := suite.assignments.GetByID(assignment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascadesValues tests ON DELETE CASCADE from assignments to values
func (suite *AssignmentSchemaTestSuite) TestDeleteCascadesValues() {
	gift := suite.createOrgType("Gift", "gift")
	def := suite.createDefinition(gift.ID, "flag", 1)
	assignment := suite.createAssignment("Gift", def)

	suite.Require().NoError(suite.assignments.Delete(assignment.ID))

	suite.Equal(int64(0), suite.countValues(assignment.ID))
	suite.ErrorIs(suite.assignments.Delete(assignment.ID), gorm.ErrRecordNotFound)
}

// TestUpdateValuesAndBatchLoad tests the ON CONFLICT upsert and the joined batch loader
func (suite *AssignmentSchemaTestSuite) TestUpdateValuesAndBatchLoad() {
	gift := suite.createOrgType("Gift", "gift")
	second := suite.createDefinition(gift.ID, "second", 2)
	first := suite.createDefinition(gift.ID, "first", 1)
	retired := suite.createDefinition(gift.ID, "retired", 3)
	a := suite.createAssignment("Gift", first, retired)
	b := suite.createAssignment("Gift", first)

	err := suite.assignments.UpdateValues(a.ID, []models.AssignmentFieldValue{
		{FieldDefinitionID: first.ID, Value: true},
		{FieldDefinitionID: second.ID, Value: true},
		{FieldDefinitionID: retired.ID, Value: true},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(3), suite.countValues(a.ID))

	reloaded, err := suite.assignments.GetByID(a.ID)
	suite.Require().NoError(err)
	suite.False(reloaded.UpdatedAt.Before(a.UpdatedAt))

	suite.Require().NoError(suite.definitions.SoftDelete(retired.ID))

	rows, err := suite.values.GetByAssignmentIDs([]uuid.UUID{a.ID, b.ID})
	suite.NoError(err)
	suite.Len(rows, 4)
	suite.Equal("first", rows[0].FieldKey)

	byAssignment := map[uuid.UUID]map[string]bool{}
	for _, row := range rows {
		if byAssignment[row.AssignmentID] == nil {
			byAssignment[row.AssignmentID] = map[string]bool{}
		}
		byAssignment[row.AssignmentID][row.FieldKey] = row.Value
	}
	suite.Equal(map[string]bool{"first": true, "second": true}, byAssignment[a.ID])
	// b never stored "second"; it reads false
	suite.Equal(map[string]bool{"first": false, "second": false}, byAssignment[b.ID])

	empty, err := suite.values.GetByAssignmentIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestUpdateValuesIsAtomic tests that a failed write leaves stored values and updated_at untouched
func (suite *AssignmentSchemaTestSuite) TestUpdateValuesIsAtomic() {
	gift := suite.createOrgType("Gift", "gift")
	flag := suite.createDefinition(gift.ID, "flag", 1)
	assignment := suite.createAssignment("Gift", flag)
	before, err := suite.assignments.GetByID(assignment.ID)
	suite.Require().NoError(err)

	err = suite.assignments.UpdateValues(assignment.ID, []models.AssignmentFieldValue{
		{FieldDefinitionID: flag.ID, Value: true},
		{FieldDefinitionID: uuid.New(), Value: true},
	})
	suite.Error(err)

	rows, err := suite.values.GetByAssignmentIDs([]uuid.UUID{assignment.ID})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.False(rows[0].Value)

	after, err := suite.assignments.GetByID(assignment.ID)
	suite.Require().NoError(err)
	suite.True(before.UpdatedAt.Equal(after.UpdatedAt))

	suite.ErrorIs(suite.assignments.UpdateValues(uuid.New(), nil), gorm.ErrRecordNotFound)
}

// TestListAndCountByOrganizationType tests listing and stats by organization type name
func (suite *AssignmentSchemaTestSuite) TestListAndCountByOrganizationType() {
	suite.createOrgType("Gift", "gift")
	suite.createOrgType("Company", "company")
	suite.createAssignment("Gift")
	suite.createAssignment("Gift")
	companyAssignment := suite.createAssignment("Company")

	page, total, err := suite.assignments.GetByOrganizationType("Gift", 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(page, 1)

	byDetail, err := suite.assignments.GetByOrganizationDetailID(companyAssignment.OrganizationDetailID)
	suite.NoError(err)
	suite.Len(byDetail, 1)

	counts, err := suite.assignments.CountByOrganizationType()
	suite.NoError(err)
	suite.Equal(map[string]int64{"Gift": 2, "Company": 1}, counts)
}

// TestAssignmentSchemaTestSuite runs the test suite
func TestAssignmentSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentSchemaTestSuite))
}
