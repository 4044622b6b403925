package dashboard

// EmployeeOverviewResponse answers the employee dashboard: today's presence,
// hours over the trailing week, and how many of the employee's requests are
// still pending.
type EmployeeOverviewResponse struct {
	EmployeeID      int64    `json:"employee_id"`
	PresentToday    bool     `json:"present_today"`
	CheckedOutToday bool     `json:"checked_out_today"`
	WeeklyHours     float64  `json:"weekly_hours"`
	PendingLeave    int64    `json:"pending_leave"`
	PendingOvertime int64    `json:"pending_overtime"`
	LastPayroll     *string  `json:"last_payroll,omitempty"` // "March 2024 (paid)"
}

// AdminOverviewResponse is the per-employee join across the four ledger
// collections, keyed by employee id.
type AdminOverviewResponse struct {
	TotalEmployees  int                     `json:"total_employees"`
	PresentToday    int                     `json:"present_today"`
	PendingLeave    int64                   `json:"pending_leave"`
	PendingOvertime int64                   `json:"pending_overtime"`
	Employees       []EmployeeOverviewEntry `json:"employees"`
}

type EmployeeOverviewEntry struct {
	EmployeeID   int64   `json:"employee_id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	PresentToday bool    `json:"present_today"`
	WeeklyHours  float64 `json:"weekly_hours"`
	PendingCount int64   `json:"pending_count"`
}
