package models

// User is an application account. Email is indexed but not unique because a
// person holding several positions is imported once per position.
type User struct {
	BaseModel
	EmployeeID    string  `json:"employee_id" gorm:"not null;size:100" validate:"required,max=100"`
	FirstName     string  `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName      string  `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string  `json:"email" gorm:"not null;size:255;index" validate:"required,max=255"`
	PositionID    *string `json:"position_id,omitempty" gorm:"size:100"`
	PositionTitle *string `json:"position_title,omitempty" gorm:"size:255"`
	// nil means the password must be set on first login
	PasswordHash *string `json:"-" gorm:"size:100"`
	Role         Role    `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
