package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"assignment-admin-backend/internal/database/models"
	apperrors "assignment-admin-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore is an in-memory GuardedStore. failOn lists 1-based Save call
// numbers that fail; panicOn lists calls that panic.
type memoryStore[T any] struct {
	saved   []*T
	calls   int
	failOn  map[int]bool
	panicOn map[int]bool
	equal   func(a, b *T) bool
}

func (s *memoryStore[T]) Save(_ context.Context, record *T) error {
	s.calls++
	if s.panicOn[s.calls] {
		panic("connection reset")
	}
	if s.failOn[s.calls] {
		return errors.New("constraint violation")
	}
	s.saved = append(s.saved, record)
	return nil
}

func (s *memoryStore[T]) ExistsExact(_ context.Context, record *T) (bool, error) {
	for _, existing := range s.saved {
		if s.equal(existing, record) {
			return true, nil
		}
	}
	return false, nil
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func employeesEqual(a, b *models.Employee) bool {
	return a.EmployeeID == b.EmployeeID &&
		sameString(a.FirstName, b.FirstName) &&
		sameString(a.LastName, b.LastName) &&
		sameString(a.Email, b.Email) &&
		sameString(a.PositionID, b.PositionID) &&
		sameString(a.PositionTitle, b.PositionTitle)
}

func usersEqual(a, b *models.User) bool {
	return a.EmployeeID == b.EmployeeID && a.FirstName == b.FirstName && a.LastName == b.LastName &&
		a.Email == b.Email && sameString(a.PositionID, b.PositionID) && sameString(a.PositionTitle, b.PositionTitle)
}

// PipelineTestSuite exercises the full ingestion flow against in-memory stores
type PipelineTestSuite struct {
	suite.Suite
	ctx       context.Context
	employees *memoryStore[models.Employee]
	users     *memoryStore[models.User]
	details   *memoryStore[models.OrganizationDetail]
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.employees = &memoryStore[models.Employee]{equal: employeesEqual}
	s.users = &memoryStore[models.User]{equal: usersEqual}
	s.details = &memoryStore[models.OrganizationDetail]{equal: func(a, b *models.OrganizationDetail) bool { return false }}
}

func (s *PipelineTestSuite) runEmployees(content string) *Outcome {
	outcome, err := NewEmployeePipeline(s.employees).Run(s.ctx, []byte(content), nil)
	s.Require().NoError(err)
	return outcome
}

func employeeCSV(rows ...string) string {
	return "Worker ID,First Name,Last Name,Email,Position ID,Position Title\n" + strings.Join(rows, "\n") + "\n"
}

func (s *PipelineTestSuite) TestEmployeeImport() {
	outcome := s.runEmployees(employeeCSV(
		"E1,Ada,Lovelace,ada@example.com,P1,Engineer",
		"E2,,,,,",
	))

	s.Equal(2, outcome.Processed)
	s.Equal(2, outcome.Imported)
	s.Equal(0, outcome.Skipped)
	s.Equal("Successfully imported 2 employees", outcome.Message())

	s.Require().Len(s.employees.saved, 2)
	first := s.employees.saved[0]
	s.Equal("E1", first.EmployeeID)
	s.Equal("Engineer", *first.PositionTitle)

	second := s.employees.saved[1]
	s.Nil(second.FirstName)
	s.Nil(second.Email)
}

func (s *PipelineTestSuite) TestDuplicateSuppression() {
	row := "E1,Ada,Lovelace,ada@example.com,P1,Engineer"

	first := s.runEmployees(employeeCSV(row))
	s.Equal(1, first.Imported)

	second := s.runEmployees(employeeCSV(row))
	s.Equal(0, second.Imported)
	s.Equal(1, second.Reasons[ReasonDuplicateRecord])

	third := s.runEmployees(employeeCSV("E1,Ada,Lovelace,ada@example.com,P1,Architect"))
	s.Equal(1, third.Imported)
	s.Len(s.employees.saved, 2)
}

func (s *PipelineTestSuite) TestDuplicateSuppressionTreatsAbsentAsDistinct() {
	s.runEmployees(employeeCSV("E1,Ada,Lovelace,,,"))

	again := s.runEmployees(employeeCSV("E1,Ada,Lovelace,,,"))
	s.Equal(0, again.Imported)

	withTitle := s.runEmployees(employeeCSV("E1,Ada,Lovelace,,,Engineer"))
	s.Equal(1, withTitle.Imported)
}

func (s *PipelineTestSuite) TestPartialFailureIsolation() {
	rows := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		rows = append(rows, fmt.Sprintf("E%d,First%d,Last%d,,,", i, i, i))
	}
	s.employees.failOn = map[int]bool{11: true}

	outcome := s.runEmployees(employeeCSV(rows...))

	s.Equal(20, outcome.Processed)
	s.Equal(19, outcome.Imported)
	s.Equal(1, outcome.Skipped)
	s.Equal(1, outcome.Reasons[ReasonSaveError])
	s.Require().Len(s.employees.saved, 19)
	s.Equal("E10", s.employees.saved[9].EmployeeID)
	s.Equal("E12", s.employees.saved[10].EmployeeID)
	s.Equal("E20", s.employees.saved[18].EmployeeID)

	s.Require().Len(outcome.Skips, 1)
	s.Equal(12, outcome.Skips[0].Line)
}

func (s *PipelineTestSuite) TestPanicInSaveCountsAsSaveError() {
	s.employees.panicOn = map[int]bool{1: true}

	outcome := s.runEmployees(employeeCSV("E1,,,,,", "E2,,,,,"))

	s.Equal(1, outcome.Imported)
	s.Equal(1, outcome.Reasons[ReasonSaveError])
}

func (s *PipelineTestSuite) TestMissingRequiredValueSkipsRow() {
	outcome := s.runEmployees(employeeCSV(" ,Ada,Lovelace,,,", "E2,,,,,"))

	s.Equal(2, outcome.Processed)
	s.Equal(1, outcome.Imported)
	s.Equal(1, outcome.Reasons[ReasonEmptyRequiredField])
	s.Equal(2, outcome.Skips[0].Line)
}

func (s *PipelineTestSuite) TestMalformedRecordIsIsolated() {
	outcome := s.runEmployees(employeeCSV("E1,,,,,", `"E2,,,,,`, "E3,,,,,"))

	s.Equal(3, outcome.Processed)
	s.Equal(2, outcome.Imported)
	s.Equal(1, outcome.Reasons[ReasonExceptionProcessing])
	s.Require().Len(outcome.Skips, 1)
	s.Equal(3, outcome.Skips[0].Line)
}

func (s *PipelineTestSuite) TestQuotesInsideUnquotedFieldsAreLiteral() {
	content := "Employee ID|First Name|Last Name|Position Title\n" +
		"E1|John \"Jack\"|Doe|Engineer\n" +
		"E2|O\"Brien|Pat|Analyst\n" +
		"E3|Ada|Lovelace|Engineer\n"

	outcome := s.runEmployees(content)

	s.Equal(3, outcome.Processed)
	s.Equal(3, outcome.Imported)
	s.Equal(0, outcome.Skipped)
	s.Require().Len(s.employees.saved, 3)
	s.Equal(`John "Jack"`, *s.employees.saved[0].FirstName)
	s.Equal(`O"Brien`, *s.employees.saved[1].FirstName)
}

func (s *PipelineTestSuite) TestUnterminatedQuoteCostsOnlyItsOwnRow() {
	content := "Worker ID,First Name\n\"E1,Ada\nE2,Bob\nE3,Cy\nE4,Di"

	outcome := s.runEmployees(content)

	s.Equal(4, outcome.Processed)
	s.Equal(3, outcome.Imported)
	s.Equal(1, outcome.Skipped)
	s.Equal(1, outcome.Reasons[ReasonExceptionProcessing])
	s.Require().Len(s.employees.saved, 3)
	s.Equal("E2", s.employees.saved[0].EmployeeID)
	s.Equal("E4", s.employees.saved[2].EmployeeID)
	s.Equal(2, outcome.Skips[0].Line)
}

func (s *PipelineTestSuite) TestQuotedFieldsKeepTheDelimiter() {
	outcome := s.runEmployees(employeeCSV(`E1,"Ada, Countess",Lovelace,,,`, "\r", "E2,,,,,\r"))

	s.Equal(2, outcome.Processed)
	s.Equal(2, outcome.Imported)
	s.Equal("Ada, Countess", *s.employees.saved[0].FirstName)
	s.Equal("E2", s.employees.saved[1].EmployeeID)
}

func (s *PipelineTestSuite) TestPipeDelimitedWithByteOrderMark() {
	content := "\xEF\xBB\xBFWorker ID|First Name|Email\nE1|Ada|ada@example.com\n"

	outcome := s.runEmployees(content)

	s.Equal(1, outcome.Imported)
	s.Equal("E1", s.employees.saved[0].EmployeeID)
	s.Equal("ada@example.com", *s.employees.saved[0].Email)
}

func (s *PipelineTestSuite) TestConfigurationErrors() {
	_, err := NewEmployeePipeline(s.employees).Run(s.ctx, []byte("  \n"), nil)
	s.ErrorIs(err, apperrors.ErrEmptyImportFile)

	_, err = NewEmployeePipeline(s.employees).Run(s.ctx, []byte("First Name,Last Name\nAda,Lovelace\n"), nil)
	s.Error(err)
	s.True(apperrors.IsConfiguration(err))
	s.Contains(err.Error(), "employeeId")
	s.Empty(s.employees.saved)
}

func (s *PipelineTestSuite) TestUserImport() {
	content := "Email,Employee ID,First Name,Last Name,Password,Role\n" +
		"ada@example.com,E1,Ada,Lovelace,s3cret,admin\n" +
		"bob@example.com,E2,Bob,Builder,,superuser\n" +
		"carl@example.com,E3,,Sagan,,\n"

	outcome, err := NewUserPipeline(s.users, bcrypt.MinCost).Run(s.ctx, []byte(content), nil)
	s.Require().NoError(err)

	s.Equal(2, outcome.Imported)
	s.Equal(1, outcome.Reasons[ReasonEmptyRequiredField])
	s.Equal("Successfully imported 2 users", outcome.Message())

	ada := s.users.saved[0]
	s.Equal(models.RoleAdmin, ada.Role)
	s.Require().NotNil(ada.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(*ada.PasswordHash), []byte("s3cret")))

	bob := s.users.saved[1]
	s.Equal(models.RoleUser, bob.Role)
	s.Nil(bob.PasswordHash)
}

func (s *PipelineTestSuite) TestUserImportRequiresAllIdentityColumns() {
	_, err := NewUserPipeline(s.users, bcrypt.MinCost).Run(s.ctx, []byte("Email,Employee ID\na@b.c,E1\n"), nil)

	s.True(apperrors.IsConfiguration(err))
	s.Contains(err.Error(), "firstName")
	s.Contains(err.Error(), "lastName")
}

func (s *PipelineTestSuite) TestOrganizationDetailSanitization() {
	content := "Legacy Organization Name,Organization,Organization Type,Reference ID\n" +
		"Old Name,Acme,Company,#REF!\n" +
		"," + strings.Repeat("x", 101) + ",Gift,R-2\n" +
		",,,\n"

	outcome, err := NewOrganizationDetailPipeline(s.details).Run(s.ctx, []byte(content), nil)
	s.Require().NoError(err)

	s.Equal(3, outcome.Imported)
	s.Equal("Successfully imported 3 organization details", outcome.Message())

	first := s.details.saved[0]
	s.Equal("Acme", *first.Organization)
	s.Nil(first.ReferenceID)

	second := s.details.saved[1]
	s.Nil(second.LegacyOrganizationName)
	s.Nil(second.Organization)
	s.Equal("R-2", *second.ReferenceID)

	empty := s.details.saved[2]
	s.Nil(empty.OrganizationType)
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func TestPersister_RecoversPanic(t *testing.T) {
	p := NewPersister[models.Employee](func(context.Context, *models.Employee) error {
		panic("boom")
	})

	err := p.Persist(context.Background(), &models.Employee{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
