package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/masdika/employee-directory/internal/employee"
	"github.com/masdika/employee-directory/internal/transport"
	"github.com/masdika/employee-directory/pkg/logger"
)

// Handler serves headline numbers for the landing page.
type Handler struct {
	*transport.BaseHandler
	Employees employee.ServiceAPI
}

func NewHandler(employees employee.ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Employees:   employees,
	}
}

type StatsResponse struct {
	TotalEmployees   int64 `json:"total_employees"`
	TotalDepartments int64 `json:"total_departments"`
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	totalEmployees, err := h.Employees.TotalEmployees()
	if err != nil {
		h.Logger.Error("Stats: failed to count employees", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	totalDepartments, err := h.Employees.TotalDepartments()
	if err != nil {
		h.Logger.Error("Stats: failed to count departments", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, StatsResponse{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
	})
}
