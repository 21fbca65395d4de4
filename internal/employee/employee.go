package employee

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	employeeDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/employee"
)

// Employee is the directory record as exposed by the service layer.
type Employee struct {
	ID          int64            `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	DateOfBirth *time.Time       `json:"date_of_birth,omitempty"`
	HireDate    *time.Time       `json:"hire_date,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Sortable columns for the paged listing. Anything else falls back to first
// name, mirroring the listing's default order.
const (
	SortByEmail      = "email"
	SortByDepartment = "department"
	SortByPosition   = "position"
	SortByFirstName  = "first_name"

	SortAscending  = "asc"
	SortDescending = "desc"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// QueryParams drives the paged search/sort listing.
type QueryParams struct {
	SearchTerm    string
	SortColumn    string
	SortDirection string
	PageNumber    int
	PageSize      int
}

// Normalize clamps pagination to sane bounds and resolves the sort whitelist.
// Page numbers below 1 clamp to 1 rather than producing a negative offset.
func (q QueryParams) Normalize() QueryParams {
	switch q.SortColumn {
	case SortByEmail, SortByDepartment, SortByPosition:
	default:
		q.SortColumn = SortByFirstName
	}

	if strings.ToLower(q.SortDirection) == SortDescending {
		q.SortDirection = SortDescending
	} else {
		q.SortDirection = SortAscending
	}

	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	return q
}

// PagedResult is one page of a larger ordered collection plus the total count
// needed to compute page numbers. Recomputed per query, never persisted.
type PagedResult[T any] struct {
	Items        []*T  `json:"items"`
	TotalRecords int64 `json:"total_records"`
	PageNumber   int   `json:"page_number"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
}

func NewPagedResult[T any](items []*T, totalRecords int64, pageNumber, pageSize int) *PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(pageSize)))
	}
	return &PagedResult[T]{
		Items:        items,
		TotalRecords: totalRecords,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}

func FromDataModel(dm *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:          dm.ID,
		FirstName:   dm.FirstName,
		LastName:    dm.LastName,
		Email:       dm.Email,
		PhoneNumber: dm.PhoneNumber,
		Department:  dm.Department,
		Position:    dm.Position,
		DateOfBirth: dm.DateOfBirth,
		HireDate:    dm.HireDate,
		Salary:      dm.Salary,
		CreatedAt:   dm.CreatedAt,
		UpdatedAt:   dm.UpdatedAt,
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Department:  e.Department,
		Position:    e.Position,
		DateOfBirth: e.DateOfBirth,
		HireDate:    e.HireDate,
		Salary:      e.Salary,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
