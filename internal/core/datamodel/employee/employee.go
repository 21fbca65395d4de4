package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the persistence shape for the employees table.
type Employee struct {
	ID          int64            `json:"id" gorm:"primaryKey"`
	FirstName   string           `json:"first_name" gorm:"column:first_name;size:50;not null"`
	LastName    string           `json:"last_name" gorm:"column:last_name;size:50;not null"`
	Email       string           `json:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
	PhoneNumber *string          `json:"phone_number,omitempty" gorm:"column:phone_number;size:15"`
	Department  *string          `json:"department,omitempty" gorm:"column:department;size:100"`
	Position    *string          `json:"position,omitempty" gorm:"column:position;size:100"`
	DateOfBirth *time.Time       `json:"date_of_birth,omitempty" gorm:"column:date_of_birth;type:date"`
	HireDate    *time.Time       `json:"hire_date,omitempty" gorm:"column:hire_date;type:date"`
	Salary      *decimal.Decimal `json:"salary,omitempty" gorm:"column:salary;type:numeric(12,2)"`
	// Timestamps are owned by the service layer: created_at is set once on
	// insert, updated_at stays NULL until the first update.
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime:false;autoUpdateTime:false"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at;autoUpdateTime:false"`
}

func (Employee) TableName() string {
	return "employees"
}
