package employee

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/masdika/employee-directory/internal"
	employeeDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/employee"
)

// RepositoryAPI is the employee-store contract. Lookup methods return
// (nil, nil) when the record is absent.
type RepositoryAPI interface {
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	Create(emp *employeeDatamodel.Employee) error
	Update(emp *employeeDatamodel.Employee) error
	Delete(id int64) (bool, error)
	Exists(id int64) (bool, error)
	EmailExists(email string, excludeID *int64) (bool, error)
	GetPaged(params QueryParams) ([]*employeeDatamodel.Employee, int64, error)
	Count() (int64, error)
	CountDepartments() (int64, error)
}

// Service performs the directory's CRUD and paged-query operations and owns
// the email-uniqueness business rule.
type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAll returns every employee ordered by last name then first name.
// Unbounded; intended for the export path only.
func (s *Service) GetAll() ([]*Employee, error) {
	dms, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get all employees", "error", err)
		return nil, apperrors.NewInternalError("failed to retrieve employees", err)
	}

	employees := make([]*Employee, 0, len(dms))
	for _, dm := range dms {
		employees = append(employees, FromDataModel(dm))
	}
	return employees, nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, apperrors.NewInternalError("failed to retrieve employee", err)
	}
	if dm == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return FromDataModel(dm), nil
}

// Create persists a new employee. The advisory EmailExists probe catches the
// common duplicate early; the unique constraint on employees.email is the
// authoritative guard, so a duplicate-key failure is also mapped to a conflict.
func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	taken, err := s.repo.EmailExists(dto.Email, nil)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	dm := &employeeDatamodel.Employee{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Department:  dto.Department,
		Position:    dto.Position,
		DateOfBirth: dto.DateOfBirth,
		HireDate:    dto.HireDate,
		Salary:      dto.Salary,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(dm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		s.logger.Error("failed to create employee", "error", err)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", dm.ID, "email", dm.Email)
	return FromDataModel(dm), nil
}

// Update replaces every mutable field of the employee. Keeping the record's
// own email is allowed; taking a different employee's email is a conflict.
func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load employee for update", "error", err, "employee_id", id)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}
	if dm == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	taken, err := s.repo.EmailExists(dto.Email, &id)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err, "employee_id", id)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	now := time.Now()
	dm.FirstName = dto.FirstName
	dm.LastName = dto.LastName
	dm.Email = dto.Email
	dm.PhoneNumber = dto.PhoneNumber
	dm.Department = dto.Department
	dm.Position = dto.Position
	dm.DateOfBirth = dto.DateOfBirth
	dm.HireDate = dto.HireDate
	dm.Salary = dto.Salary
	dm.UpdatedAt = &now

	if err := s.repo.Update(dm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return FromDataModel(dm), nil
}

// Delete removes the employee. Returns false, not an error, when no record
// has that id.
func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return false, apperrors.NewInternalError("failed to delete employee", err)
	}
	if deleted {
		s.logger.Info("employee deleted", "employee_id", id)
	}
	return deleted, nil
}

func (s *Service) Exists(id int64) (bool, error) {
	return s.repo.Exists(id)
}

// EmailExists reports whether the email is taken, optionally excluding one id
// for "taken by someone else" checks during updates. Advisory only.
func (s *Service) EmailExists(email string, excludeID *int64) (bool, error) {
	return s.repo.EmailExists(email, excludeID)
}

// GetPaged runs the filtered, sorted, paginated listing. The total count is
// computed over the filtered set before the page slice is taken.
func (s *Service) GetPaged(params QueryParams) (*PagedResult[Employee], error) {
	params = params.Normalize()

	dms, total, err := s.repo.GetPaged(params)
	if err != nil {
		s.logger.Error("failed to run paged employee query", "error", err,
			"search", params.SearchTerm, "sort", params.SortColumn, "page", params.PageNumber)
		return nil, apperrors.NewInternalError("failed to retrieve employees", err)
	}

	items := make([]*Employee, 0, len(dms))
	for _, dm := range dms {
		items = append(items, FromDataModel(dm))
	}

	return NewPagedResult(items, total, params.PageNumber, params.PageSize), nil
}

func (s *Service) TotalEmployees() (int64, error) {
	return s.repo.Count()
}

// TotalDepartments counts distinct non-empty department values.
func (s *Service) TotalDepartments() (int64, error) {
	return s.repo.CountDepartments()
}
