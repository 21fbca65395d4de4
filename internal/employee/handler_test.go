package employee_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	employeeDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/employee"
	"github.com/masdika/employee-directory/internal/employee"
	employeePostgres "github.com/masdika/employee-directory/internal/employee/postgres"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    employee.RepositoryAPI
		service *employee.Service
		handler *employee.Handler
		router  chi.Router
	)

	createEmployee := func(firstName, lastName, email string) *employee.Employee {
		created, err := service.Create(employee.CreateEmployeeDTO{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
		})
		Expect(err).NotTo(HaveOccurred())
		return created
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
		service = employee.NewService(repo, slogger)
		handler = employee.NewHandler(service, employee.NewExcelExporter())

		router = chi.NewRouter()
		router.Get("/employees", handler.List)
		router.Post("/employees", handler.Create)
		router.Get("/employees/export", handler.Export)
		router.Get("/employees/email-exists", handler.CheckEmail)
		router.Get("/employees/{id}", handler.Get)
		router.Put("/employees/{id}", handler.Update)
		router.Delete("/employees/{id}", handler.Delete)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GET /employees", func() {
		BeforeEach(func() {
			names := []string{"Amy", "Ben", "Cara", "Dan", "Eve", "Finn", "Gina"}
			for _, name := range names {
				createEmployee(name, "Tester", fmt.Sprintf("%s@example.com", strings.ToLower(name)))
			}
		})

		It("should return the requested page with totals", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=5", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var result employee.PagedResult[employee.Employee]
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result.TotalRecords).To(Equal(int64(7)))
			Expect(result.TotalPages).To(Equal(2))
			Expect(result.PageNumber).To(Equal(2))
			Expect(result.Items).To(HaveLen(2))
			Expect(result.Items[0].FirstName).To(Equal("Finn"))
		})

		It("should filter by search term", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?search=cara", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var result employee.PagedResult[employee.Employee]
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result.TotalRecords).To(Equal(int64(1)))
			Expect(result.Items[0].Email).To(Equal("cara@example.com"))
		})
	})

	Describe("POST /employees", func() {
		It("should create an employee", func() {
			body := `{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","department":"Engineering"}`
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var created employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Email).To(Equal("alice@example.com"))
		})

		It("should reject a duplicate email with 409", func() {
			createEmployee("Alice", "Smith", "alice@example.com")

			body := `{"first_name":"Other","last_name":"Person","email":"alice@example.com"}`
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(ContainSubstring("EMAIL_ALREADY_IN_USE"))
		})

		It("should reject an invalid payload with 400", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("{not json"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject missing required fields with 400", func() {
			body := `{"first_name":"","last_name":"Smith","email":"alice@example.com"}`
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("first_name is required"))
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should return the employee", func() {
			created := createEmployee("Alice", "Smith", "alice@example.com")

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/employees/%d", created.ID), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var fetched employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&fetched)).To(Succeed())
			Expect(fetched.ID).To(Equal(created.ID))
		})

		It("should return 404 for a missing employee", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /employees/{id}", func() {
		It("should accept an update that keeps the employee's own email", func() {
			created := createEmployee("Alice", "Smith", "alice@example.com")

			body := `{"first_name":"Alicia","last_name":"Smith","email":"alice@example.com"}`
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/employees/%d", created.ID), bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var updated employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
			Expect(updated.FirstName).To(Equal("Alicia"))
			Expect(updated.UpdatedAt).NotTo(BeNil())
		})

		It("should reject taking another employee's email with 409", func() {
			created := createEmployee("Alice", "Smith", "alice@example.com")
			createEmployee("Bob", "Jones", "bob@example.com")

			body := `{"first_name":"Alice","last_name":"Smith","email":"bob@example.com"}`
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/employees/%d", created.ID), bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should delete and return 204", func() {
			created := createEmployee("Alice", "Smith", "alice@example.com")

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/employees/%d", created.ID), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("should return 404 when nothing was deleted", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /employees/email-exists", func() {
		It("should report a taken email", func() {
			createEmployee("Alice", "Smith", "alice@example.com")

			req := httptest.NewRequest(http.MethodGet, "/employees/email-exists?email=alice@example.com", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["exists"]).To(BeTrue())
		})

		It("should exclude the edited employee's own record", func() {
			created := createEmployee("Alice", "Smith", "alice@example.com")

			url := fmt.Sprintf("/employees/email-exists?email=alice@example.com&exclude_id=%d", created.ID)
			req := httptest.NewRequest(http.MethodGet, url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["exists"]).To(BeFalse())
		})

		It("should require the email parameter", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/email-exists", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /employees/export", func() {
		It("should stream a spreadsheet attachment of the whole directory", func() {
			createEmployee("Alice", "Smith", "alice@example.com")
			createEmployee("Bob", "Jones", "bob@example.com")

			req := httptest.NewRequest(http.MethodGet, "/employees/export", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
			Expect(w.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="Employees.xlsx"`))

			f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Employees")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0][0]).To(Equal("Name"))
			Expect(rows[1][0]).To(Equal("Bob Jones"))
			Expect(rows[2][0]).To(Equal("Alice Smith"))
		})
	})
})
