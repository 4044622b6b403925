package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// CanTransitionTo encodes the payroll lifecycle. Records enter the ledger as
// processed; only processed → paid is a legal transition. The draft status
// exists in the data model for imported records but no code path produces it.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	return s == PayrollStatusProcessed && next == PayrollStatusPaid
}

// PayrollRecord is one employee's pay for one month. NetSalary is computed
// once at creation (base + overtime + bonus − deductions) and never
// re-derived.
type PayrollRecord struct {
	ID            int64
	EmployeeID    int64
	Month         string
	Year          int
	BaseSalary    decimal.Decimal
	OvertimePay   decimal.Decimal
	Bonus         decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	Status        PayrollStatus
	ProcessedDate *time.Time
	PaymentDate   *time.Time
	PaidBy        *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined field, populated by admin list queries.
	EmployeeName *string
}

// SalaryBreakdown is the output of a SalaryCalculator.
type SalaryBreakdown struct {
	BaseSalary  decimal.Decimal
	OvertimePay decimal.Decimal
	Bonus       decimal.Decimal
	Deductions  decimal.Decimal
}

// Net returns base + overtime + bonus − deductions.
func (b SalaryBreakdown) Net() decimal.Decimal {
	return b.BaseSalary.Add(b.OvertimePay).Add(b.Bonus).Sub(b.Deductions)
}
