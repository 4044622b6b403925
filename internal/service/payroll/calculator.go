package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Fixed figures carried over from the system this ledger replaces. Every
// employee-period nets 5400.
var (
	fixedBaseSalary  = decimal.NewFromInt(5000)
	fixedOvertimePay = decimal.NewFromInt(500)
	fixedBonus       = decimal.NewFromInt(100)
	fixedDeductions  = decimal.NewFromInt(200)
)

// FixedSalaryCalculator reproduces the flat pay figures of the previous
// system: identical amounts for every employee and period.
type FixedSalaryCalculator struct{}

func NewFixedSalaryCalculator() payroll.SalaryCalculator {
	return &FixedSalaryCalculator{}
}

// Calculate implements payroll.SalaryCalculator.
func (c *FixedSalaryCalculator) Calculate(ctx context.Context, employeeID int64, month string, year int) (payroll.SalaryBreakdown, error) {
	return payroll.SalaryBreakdown{
		BaseSalary:  fixedBaseSalary,
		OvertimePay: fixedOvertimePay,
		Bonus:       fixedBonus,
		Deductions:  fixedDeductions,
	}, nil
}

// AttendanceSalaryCalculator derives pay from the attendance and overtime
// ledgers: base pay from completed attendance hours, overtime pay from
// approved overtime records, the fixed bonus and deduction figures
// unchanged.
type AttendanceSalaryCalculator struct {
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	hourlyRate     decimal.Decimal
}

func NewAttendanceSalaryCalculator(
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	hourlyRate decimal.Decimal,
) payroll.SalaryCalculator {
	return &AttendanceSalaryCalculator{
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		hourlyRate:     hourlyRate,
	}
}

// Calculate implements payroll.SalaryCalculator.
func (c *AttendanceSalaryCalculator) Calculate(ctx context.Context, employeeID int64, month string, year int) (payroll.SalaryBreakdown, error) {
	from, to, err := periodBounds(month, year)
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	start := dayKey(from)
	end := dayKey(to.AddDate(0, 0, -1))
	records, _, err := c.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		StartDate:  &start,
		EndDate:    &end,
		Page:       1,
		Limit:      31,
	})
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to list attendance for period: %w", err)
	}

	var workedHours float64
	for _, rec := range records {
		workedHours += rec.WorkDuration().Hours()
	}

	approved, err := c.overtimeRepo.ListApprovedInRange(ctx, employeeID, from, to)
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to list approved overtime for period: %w", err)
	}

	overtimePay := decimal.Zero
	for _, rec := range approved {
		pay := decimal.NewFromFloat(rec.Hours).
			Mul(decimal.NewFromFloat(rec.Rate)).
			Mul(c.hourlyRate)
		overtimePay = overtimePay.Add(pay)
	}

	return payroll.SalaryBreakdown{
		BaseSalary:  decimal.NewFromFloat(workedHours).Mul(c.hourlyRate).Round(2),
		OvertimePay: overtimePay.Round(2),
		Bonus:       fixedBonus,
		Deductions:  fixedDeductions,
	}, nil
}

// periodBounds returns [first day of month, first day of next month) as
// midnight-UTC day values.
func periodBounds(month string, year int) (time.Time, time.Time, error) {
	parsed, err := time.Parse("January", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown month name %q: %w", month, err)
	}
	from := time.Date(year, parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
