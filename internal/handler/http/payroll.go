package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	MarkAsPaid(w http.ResponseWriter, r *http.Request)
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Process implements PayrollHandler.
func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll processed", resp)
}

// MarkAsPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payroll record id", nil)
		return
	}

	resp, err := h.payrollService.MarkPayrollAsPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll marked as paid", resp)
}

// GetMyPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetMyPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := payroll.PayrollFilter{
		Page:  parseIntQuery(q.Get("page"), 1),
		Limit: parseIntQuery(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.EmployeeID = &id
		}
	}
	if v := q.Get("month"); v != "" {
		filter.Month = &v
	}
	if v := q.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	resp, err := h.payrollService.ListPayroll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, resp.Records, paginationMeta(resp.Page, resp.Limit, resp.TotalCount))
}
