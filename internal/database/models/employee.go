package models

// Employee is a person record imported from HR extracts.
// Optional columns are nullable: a missing value is stored as NULL, never as "".
type Employee struct {
	BaseModel
	EmployeeID    string  `json:"employee_id" gorm:"not null;size:100;index" validate:"required,max=100"`
	FirstName     *string `json:"first_name,omitempty" gorm:"size:100"`
	LastName      *string `json:"last_name,omitempty" gorm:"size:100"`
	Email         *string `json:"email,omitempty" gorm:"size:255;index"`
	PositionID    *string `json:"position_id,omitempty" gorm:"size:100"`
	PositionTitle *string `json:"position_title,omitempty" gorm:"size:255"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
