package models

import "strings"

// SubjectType identifies which kind of person an assignment is attached to
type SubjectType string

const (
	SubjectTypeEmployee SubjectType = "employee"
	SubjectTypeUser     SubjectType = "user"
)

// IsValid checks if the SubjectType is valid
func (s SubjectType) IsValid() bool {
	switch s {
	case SubjectTypeEmployee, SubjectTypeUser:
		return true
	}
	return false
}

// Role is the application role of an imported user
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// ParseRole upper-cases raw and falls back to RoleUser for anything unknown
func ParseRole(raw string) Role {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if r.IsValid() {
		return r
	}
	return RoleUser
}
