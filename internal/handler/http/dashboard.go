package http

import (
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	EmployeeOverview(w http.ResponseWriter, r *http.Request)
	AdminOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// EmployeeOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) EmployeeOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetEmployeeOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// AdminOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) AdminOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetAdminOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
