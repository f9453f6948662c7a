package ingest

import (
	"sort"
	"strings"
)

// Field is a logical column understood by the importers
type Field string

const (
	FieldEmail                  Field = "email"
	FieldWorkerID               Field = "employeeId"
	FieldFirstName              Field = "firstName"
	FieldLastName               Field = "lastName"
	FieldPositionID             Field = "positionId"
	FieldPositionTitle          Field = "positionTitle"
	FieldPassword               Field = "password"
	FieldRole                   Field = "role"
	FieldLegacyOrganizationName Field = "legacyOrganizationName"
	FieldOrganization           Field = "organization"
	FieldOrganizationType       Field = "organizationType"
	FieldReferenceID            Field = "referenceId"
)

// Kind names an import target
type Kind string

const (
	KindEmployee           Kind = "employee"
	KindUser               Kind = "user"
	KindOrganizationDetail Kind = "organization_detail"
)

// Noun is the plural used in caller-facing messages
func (k Kind) Noun() string {
	switch k {
	case KindEmployee:
		return "employees"
	case KindUser:
		return "users"
	case KindOrganizationDetail:
		return "organization details"
	}
	return "records"
}

// Rule maps a normalized (lower-cased, trimmed) header to a logical field
type Rule struct {
	Field Field
	Kinds []Kind
	Match func(header string) bool
}

func (r Rule) appliesTo(kind Kind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

var (
	personKinds = []Kind{KindEmployee, KindUser}
	userKinds   = []Kind{KindUser}
	orgKinds    = []Kind{KindOrganizationDetail}
)

// rules is evaluated top to bottom; order is significant.
var rules = []Rule{
	{Field: FieldEmail, Kinds: personKinds, Match: func(h string) bool {
		return strings.Contains(h, "email")
	}},
	{Field: FieldWorkerID, Kinds: personKinds, Match: func(h string) bool {
		return (strings.Contains(h, "employee") || strings.Contains(h, "worker")) && strings.Contains(h, "id")
	}},
	{Field: FieldFirstName, Kinds: personKinds, Match: func(h string) bool {
		return containsAll(h, "first", "name")
	}},
	{Field: FieldLastName, Kinds: personKinds, Match: func(h string) bool {
		return containsAll(h, "last", "name")
	}},
	{Field: FieldPositionID, Kinds: personKinds, Match: func(h string) bool {
		return containsAll(h, "position", "id")
	}},
	{Field: FieldPositionTitle, Kinds: personKinds, Match: func(h string) bool {
		return containsAll(h, "position", "title")
	}},
	{Field: FieldPassword, Kinds: userKinds, Match: func(h string) bool {
		return strings.Contains(h, "password")
	}},
	{Field: FieldRole, Kinds: userKinds, Match: func(h string) bool {
		return strings.Contains(h, "role")
	}},
	{Field: FieldLegacyOrganizationName, Kinds: orgKinds, Match: func(h string) bool {
		return containsAll(h, "legacy", "organization", "name")
	}},
	{Field: FieldOrganization, Kinds: orgKinds, Match: func(h string) bool {
		return h == "organization" ||
			(strings.Contains(h, "organization") && !strings.Contains(h, "legacy") && !strings.Contains(h, "type"))
	}},
	{Field: FieldOrganizationType, Kinds: orgKinds, Match: func(h string) bool {
		return containsAll(h, "organization", "type")
	}},
	{Field: FieldReferenceID, Kinds: orgKinds, Match: func(h string) bool {
		return containsAll(h, "reference", "id") || h == "referenceid"
	}},
}

// RulesFor returns the ordered rules that apply to kind
func RulesFor(kind Kind) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.appliesTo(kind) {
			out = append(out, r)
		}
	}
	return out
}

// Mapping holds the column index bound to each logical field
type Mapping map[Field]int

// MapHeaders binds headers to fields. Headers are visited in file order and each
// is consumed by the first rule that matches it and whose field is still unbound.
// Headers no rule accepts are ignored.
func MapHeaders(headers []string, rules []Rule) Mapping {
	mapping := make(Mapping, len(rules))
	for i, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		for _, r := range rules {
			if _, bound := mapping[r.Field]; bound {
				continue
			}
			if r.Match(normalized) {
				mapping[r.Field] = i
				break
			}
		}
	}
	return mapping
}

// Header returns the original header text bound to f
func (m Mapping) Header(headers []string, f Field) (string, bool) {
	i, ok := m[f]
	if !ok || i >= len(headers) {
		return "", false
	}
	return headers[i], true
}

// Missing lists required fields with no bound column, sorted for stable messages
func (m Mapping) Missing(required []Field) []string {
	var missing []string
	for _, f := range required {
		if _, ok := m[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	sort.Strings(missing)
	return missing
}
