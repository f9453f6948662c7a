package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapHeaders_WorkerExtract(t *testing.T) {
	headers := []string{"Worker ID", "First Name", "Last Name", "Email Address", "Cost Center"}

	mapping := MapHeaders(headers, RulesFor(KindEmployee))

	assert.Equal(t, Mapping{
		FieldWorkerID:  0,
		FieldFirstName: 1,
		FieldLastName:  2,
		FieldEmail:     3,
	}, mapping)

	h, ok := mapping.Header(headers, FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, "Email Address", h)
}

func TestMapHeaders_FirstMatchWinsAndFallsThrough(t *testing.T) {
	// The second email column cannot rebind Email, and matches nothing else.
	headers := []string{"Email", "Backup Email", "Employee ID", "Position ID", "Position Title"}

	mapping := MapHeaders(headers, RulesFor(KindUser))

	assert.Equal(t, 0, mapping[FieldEmail])
	assert.Equal(t, 2, mapping[FieldWorkerID])
	assert.Equal(t, 3, mapping[FieldPositionID])
	assert.Equal(t, 4, mapping[FieldPositionTitle])
	assert.Len(t, mapping, 4)
}

func TestMapHeaders_CaseAndWhitespaceInsensitive(t *testing.T) {
	mapping := MapHeaders([]string{"  EMPLOYEE_ID ", "PassWord", "User Role"}, RulesFor(KindUser))

	assert.Equal(t, Mapping{FieldWorkerID: 0, FieldPassword: 1, FieldRole: 2}, mapping)
}

func TestMapHeaders_RulesAreScopedByKind(t *testing.T) {
	headers := []string{"Employee ID", "Password", "Organization"}

	employee := MapHeaders(headers, RulesFor(KindEmployee))
	assert.Equal(t, Mapping{FieldWorkerID: 0}, employee)

	org := MapHeaders(headers, RulesFor(KindOrganizationDetail))
	assert.Equal(t, Mapping{FieldOrganization: 2}, org)
}

func TestMapHeaders_OrganizationDetail(t *testing.T) {
	headers := []string{"Legacy Organization Name", "Organization Type", "Organization", "Reference ID"}

	mapping := MapHeaders(headers, RulesFor(KindOrganizationDetail))

	assert.Equal(t, Mapping{
		FieldLegacyOrganizationName: 0,
		FieldOrganizationType:       1,
		FieldOrganization:           2,
		FieldReferenceID:            3,
	}, mapping)
}

func TestMapHeaders_ReferenceIDSpelledTogether(t *testing.T) {
	mapping := MapHeaders([]string{"ReferenceId"}, RulesFor(KindOrganizationDetail))
	assert.Equal(t, Mapping{FieldReferenceID: 0}, mapping)
}

func TestMapping_Missing(t *testing.T) {
	mapping := MapHeaders([]string{"Worker ID", "Last Name"}, RulesFor(KindUser))

	missing := mapping.Missing([]Field{FieldEmail, FieldWorkerID, FieldFirstName, FieldLastName})

	assert.Equal(t, []string{"email", "firstName"}, missing)
}
