package employee

import (
	"time"

	"github.com/shopspring/decimal"

	errors "github.com/masdika/employee-directory/internal"
	"github.com/masdika/employee-directory/internal/core/common/validation"
)

// CreateEmployeeDTO carries a validated create request across the service boundary.
type CreateEmployeeDTO struct {
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	DateOfBirth *time.Time       `json:"date_of_birth,omitempty"`
	HireDate    *time.Time       `json:"hire_date,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
}

// UpdateEmployeeDTO is a full replace of the mutable fields: omitted optional
// fields clear the stored value instead of keeping it.
type UpdateEmployeeDTO struct {
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	DateOfBirth *time.Time       `json:"date_of_birth,omitempty"`
	HireDate    *time.Time       `json:"hire_date,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
}

func (d CreateEmployeeDTO) Validate() *errors.AppError {
	return validateEmployeeFields(d.FirstName, d.LastName, d.Email, d.PhoneNumber, d.Department, d.Position, d.DateOfBirth, d.Salary)
}

func (d UpdateEmployeeDTO) Validate() *errors.AppError {
	return validateEmployeeFields(d.FirstName, d.LastName, d.Email, d.PhoneNumber, d.Department, d.Position, d.DateOfBirth, d.Salary)
}

func validateEmployeeFields(firstName, lastName, email string, phone, department, position *string, dateOfBirth *time.Time, salary *decimal.Decimal) *errors.AppError {
	v := validation.NewValidator()
	v.Field("first_name", firstName).Required().MaxLength(50)
	v.Field("last_name", lastName).Required().MaxLength(50)
	v.Field("email", email).Required().MaxLength(255).Email()
	v.Field("phone_number", phone).MaxLength(15)
	v.Field("department", department).MaxLength(100)
	v.Field("position", position).MaxLength(100)
	v.Field("date_of_birth", dateOfBirth).NotFuture()
	v.Field("salary", salary).NonNegative()
	return v.Validate()
}
