package dashboard

import "context"

// DashboardService answers read-only questions joined across the ledger
// collections. Its computations are pure functions over fetched records and
// have no persistence side effects.
type DashboardService interface {
	GetEmployeeOverview(ctx context.Context) (EmployeeOverviewResponse, error)
	GetAdminOverview(ctx context.Context) (AdminOverviewResponse, error)
}
