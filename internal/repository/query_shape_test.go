package repository

import (
	"context"
	"fmt"
	"testing"

	"assignment-admin-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFieldValueRepository_GetByAssignmentIDsReadsActiveFieldsWithFalseDefault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFieldValueRepository(db)

	a, b := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT a.id AS assignment_id, d.field_key, COALESCE\(v.value, FALSE\) AS value FROM assignments AS a ` +
		`JOIN organization_details AS od ON od.id = a.organization_detail_id ` +
		`JOIN organization_types AS ot ON ot.name = od.organization_type ` +
		`JOIN assignment_field_definitions AS d ON d.organization_type_id = ot.id AND d.active = \$1 ` +
		`LEFT JOIN assignment_field_values AS v ON v.assignment_id = a.id AND v.field_definition_id = d.id ` +
		`WHERE a.id IN \(\$2,\$3\) ORDER BY d.display_order ASC`).
		WithArgs(true, a, b).
		WillReturnRows(sqlmock.NewRows([]string{"assignment_id", "field_key", "value"}).
			AddRow(a.String(), "can_sign", true).
			AddRow(b.String(), "can_sign", false))

	rows, err := repo.GetByAssignmentIDs([]uuid.UUID{a, b})

	require.NoError(t, err)
	assert.Equal(t, []FieldValueWithKey{
		{AssignmentID: a, FieldKey: "can_sign", Value: true},
		{AssignmentID: b, FieldKey: "can_sign", Value: false},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFieldValueRepository_GetByAssignmentIDsSkipsEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFieldValueRepository(db)

	rows, err := repo.GetByAssignmentIDs(nil)

	assert.NoError(t, err)
	assert.Nil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ExistsExactComparesNullSafely(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	title := "Engineer"
	employee := &models.Employee{EmployeeID: "E1", PositionTitle: &title}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE employee_id = \$1 AND first_name IS NOT DISTINCT FROM \$2 AND last_name IS NOT DISTINCT FROM \$3 AND email IS NOT DISTINCT FROM \$4 AND position_id IS NOT DISTINCT FROM \$5 AND position_title IS NOT DISTINCT FROM \$6`).
		WithArgs("E1", nil, nil, nil, nil, "Engineer").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsExact(context.Background(), employee)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsExactNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user := &models.User{EmployeeID: "E1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE \(employee_id = \$1 AND first_name = \$2 AND last_name = \$3 AND email = \$4\) AND position_id IS NOT DISTINCT FROM \$5 AND position_title IS NOT DISTINCT FROM \$6`).
		WithArgs("E1", "Ada", "Lovelace", "ada@example.com", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsExact(context.Background(), user)

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_UpdateValuesRollsBackWhenAssignmentIsGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db)

	id, defID := uuid.New(), uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "assignment_field_values" .* ON CONFLICT \("assignment_id","field_definition_id"\) DO UPDATE SET "value"="excluded"."value","updated_at"="excluded"."updated_at"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "assignments" SET "updated_at"=\$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateValues(id, []models.AssignmentFieldValue{{FieldDefinitionID: defID, Value: true}})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, IsUniqueViolation(nil))
}
