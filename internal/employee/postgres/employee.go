package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	employeeDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/employee"
	"github.com/masdika/employee-directory/internal/employee"
)

// EmployeeRepository implements employee.RepositoryAPI using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) error {
	// Save writes every column, matching the full-replace update semantics;
	// Updates would skip zeroed and nil fields.
	return r.db.Save(emp).Error
}

func (r *EmployeeRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EmployeeRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) EmailExists(email string, excludeID *int64) (bool, error) {
	query := r.db.Model(&employeeDatamodel.Employee{}).Where("email = ?", email)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetPaged applies substring search, single-key whitelisted sort and offset
// pagination, and counts the filtered set before slicing the page.
func (r *EmployeeRepository) GetPaged(params employee.QueryParams) ([]*employeeDatamodel.Employee, int64, error) {
	query := r.db.Model(&employeeDatamodel.Employee{})

	if params.SearchTerm != "" {
		pattern := "%" + params.SearchTerm + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR department LIKE ? OR position LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Normalize has already reduced the column to the whitelist and the
	// direction to asc|desc, so interpolation here is safe.
	order := fmt.Sprintf("%s %s", params.SortColumn, params.SortDirection)

	var employees []*employeeDatamodel.Employee
	err := query.
		Order(order).
		Offset((params.PageNumber - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *EmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) CountDepartments() (int64, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("department IS NOT NULL AND department <> ''").
		Distinct("department").
		Count(&count).Error
	return count, err
}
