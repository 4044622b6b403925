package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	OverrideCheckIn(w http.ResponseWriter, r *http.Request)
	OverrideCheckOut(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", resp)
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	q := r.URL.Query()
	filter := attendance.AttendanceFilter{
		Page:  parseIntQuery(q.Get("page"), 1),
		Limit: parseIntQuery(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.EmployeeID = &id
		}
	}
	if v := q.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	return filter
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetMyAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, resp.Attendances, paginationMeta(resp.Page, resp.Limit, resp.TotalCount))
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, resp.Attendances, paginationMeta(resp.Page, resp.Limit, resp.TotalCount))
}

// OverrideCheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) OverrideCheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.OverrideCheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Check-in overridden", resp)
}

// OverrideCheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) OverrideCheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.OverrideCheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Check-out overridden", resp)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
