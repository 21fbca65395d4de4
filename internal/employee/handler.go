package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/masdika/employee-directory/internal/transport"
	"github.com/masdika/employee-directory/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(dto CreateEmployeeDTO) (*Employee, error)
	Update(id int64, dto UpdateEmployeeDTO) (*Employee, error)
	Delete(id int64) (bool, error)
	EmailExists(email string, excludeID *int64) (bool, error)
	GetPaged(params QueryParams) (*PagedResult[Employee], error)
	TotalEmployees() (int64, error)
	TotalDepartments() (int64, error)
}

type Handler struct {
	*transport.BaseHandler
	Service  ServiceAPI
	Exporter Exporter
}

func NewHandler(service ServiceAPI, exporter Exporter) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Exporter:    exporter,
	}
}

// List handles the paged search/sort listing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := QueryParams{
		SearchTerm:    r.URL.Query().Get("search"),
		SortColumn:    r.URL.Query().Get("sort_column"),
		SortDirection: r.URL.Query().Get("sort_direction"),
		PageNumber:    1,
		PageSize:      DefaultPageSize,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			params.PageNumber = p
		}
	}
	if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil {
			params.PageSize = s
		}
	}

	result, err := h.Service.GetPaged(params)
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Warn("Create: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err, "employee_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Warn("Update: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if !deleted {
		h.WriteError(w, http.StatusNotFound, "employee not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckEmail is the advisory uniqueness probe used by forms; exclude_id makes
// it answer "taken by someone else" during edits.
func (h *Handler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.WriteError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	var excludeID *int64
	if excludeStr := r.URL.Query().Get("exclude_id"); excludeStr != "" {
		id, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid exclude_id")
			return
		}
		excludeID = &id
	}

	exists, err := h.Service.EmailExists(email, excludeID)
	if err != nil {
		h.Logger.Error("CheckEmail: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// Export streams the whole directory as a spreadsheet.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="Employees.xlsx"`)

	if err := h.Exporter.Write(w, employees); err != nil {
		// Headers are already gone; log rather than attempt a JSON error body.
		h.Logger.Error("Export: failed to write workbook", "error", err)
	}
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid employee ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return 0, false
	}
	return id, true
}
