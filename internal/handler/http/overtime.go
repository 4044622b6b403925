package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyOvertime(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Submit implements OvertimeHandler.
func (h *overtimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.overtimeService.SubmitOvertimeRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Overtime request submitted", resp)
}

// GetMyOvertime implements OvertimeHandler.
func (h *overtimeHandlerImpl) GetMyOvertime(w http.ResponseWriter, r *http.Request) {
	resp, err := h.overtimeService.GetMyOvertime(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := overtime.OvertimeFilter{
		Page:  parseIntQuery(q.Get("page"), 1),
		Limit: parseIntQuery(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.EmployeeID = &id
		}
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	resp, err := h.overtimeService.ListOvertime(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, resp.Requests, paginationMeta(resp.Page, resp.Limit, resp.TotalCount))
}

// UpdateStatus implements OvertimeHandler.
func (h *overtimeHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid overtime request id", nil)
		return
	}

	var req overtime.UpdateOvertimeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := h.overtimeService.UpdateOvertimeStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime request "+resp.Status, resp)
}
