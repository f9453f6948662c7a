package ingest

import (
	"context"
	"fmt"

	"assignment-admin-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
)

// RecordStore persists one record per call in an isolated transaction
type RecordStore[T any] interface {
	Save(ctx context.Context, record *T) error
}

// GuardedStore can also answer whether an identical record already exists
type GuardedStore[T any] interface {
	RecordStore[T]
	ExistsExact(ctx context.Context, record *T) (bool, error)
}

// NewEmployeePipeline imports employees; the worker identifier is the only required column
func NewEmployeePipeline(store GuardedStore[models.Employee]) *Pipeline[models.Employee] {
	return &Pipeline[models.Employee]{
		Kind:     KindEmployee,
		Required: []Field{FieldWorkerID},
		Sanitize: TrimOnly,
		Build: func(row Row) (*models.Employee, error) {
			return &models.Employee{
				EmployeeID:    row.Get(FieldWorkerID),
				FirstName:     row.Ptr(FieldFirstName),
				LastName:      row.Ptr(FieldLastName),
				Email:         row.Ptr(FieldEmail),
				PositionID:    row.Ptr(FieldPositionID),
				PositionTitle: row.Ptr(FieldPositionTitle),
			}, nil
		},
		IsDuplicate: store.ExistsExact,
		Describe: func(e *models.Employee) string {
			return fmt.Sprintf("EmployeeID: '%s', Email: '%s', PositionID: '%s', PositionTitle: '%s'",
				e.EmployeeID, orEmpty(e.Email), orEmpty(e.PositionID), orEmpty(e.PositionTitle))
		},
		Persister: NewPersister[models.Employee](store.Save),
	}
}

// NewUserPipeline imports application users. Passwords are bcrypt hashed with
// cost; an unknown role falls back to USER.
func NewUserPipeline(store GuardedStore[models.User], cost int) *Pipeline[models.User] {
	return &Pipeline[models.User]{
		Kind:     KindUser,
		Required: []Field{FieldEmail, FieldWorkerID, FieldFirstName, FieldLastName},
		Sanitize: TrimOnly,
		Build: func(row Row) (*models.User, error) {
			user := &models.User{
				EmployeeID:    row.Get(FieldWorkerID),
				FirstName:     row.Get(FieldFirstName),
				LastName:      row.Get(FieldLastName),
				Email:         row.Get(FieldEmail),
				PositionID:    row.Ptr(FieldPositionID),
				PositionTitle: row.Ptr(FieldPositionTitle),
				Role:          models.ParseRole(row.Get(FieldRole)),
			}
			if row.Has(FieldPassword) {
				hash, err := bcrypt.GenerateFromPassword([]byte(row.Get(FieldPassword)), cost)
				if err != nil {
					return nil, fmt.Errorf("hash password: %w", err)
				}
				encoded := string(hash)
				user.PasswordHash = &encoded
			}
			return user, nil
		},
		IsDuplicate: store.ExistsExact,
		Describe: func(u *models.User) string {
			return fmt.Sprintf("EmployeeID: '%s', Email: '%s', FirstName: '%s', LastName: '%s', PositionID: '%s', PositionTitle: '%s'",
				u.EmployeeID, u.Email, u.FirstName, u.LastName, orEmpty(u.PositionID), orEmpty(u.PositionTitle))
		},
		Persister: NewPersister[models.User](store.Save),
	}
}

// NewOrganizationDetailPipeline imports organization details. Every column is
// optional and no duplicate guard applies.
func NewOrganizationDetailPipeline(store RecordStore[models.OrganizationDetail]) *Pipeline[models.OrganizationDetail] {
	return &Pipeline[models.OrganizationDetail]{
		Kind:     KindOrganizationDetail,
		Sanitize: SpreadsheetSafe,
		Build: func(row Row) (*models.OrganizationDetail, error) {
			return &models.OrganizationDetail{
				LegacyOrganizationName: row.Ptr(FieldLegacyOrganizationName),
				Organization:           row.Ptr(FieldOrganization),
				OrganizationType:       row.Ptr(FieldOrganizationType),
				ReferenceID:            row.Ptr(FieldReferenceID),
			}, nil
		},
		Describe: func(d *models.OrganizationDetail) string {
			return fmt.Sprintf("Organization: '%s', ReferenceID: '%s'", orEmpty(d.Organization), orEmpty(d.ReferenceID))
		},
		Persister: NewPersister[models.OrganizationDetail](store.Save),
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return "(empty)"
	}
	return *s
}
