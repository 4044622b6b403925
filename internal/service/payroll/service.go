package payroll

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
)

func employeeIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	raw, ok := claims["employee_id"].(string)
	if !ok || raw == "" {
		return 0, fmt.Errorf("employee_id claim is missing or invalid")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("employee_id claim is not numeric: %w", err)
	}
	return id, nil
}

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	calculator payroll.SalaryCalculator
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	calculator payroll.SalaryCalculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
		calculator:         calculator,
	}
}

func instantPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func toResponse(rec payroll.PayrollRecord) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Month:         rec.Month,
		Year:          rec.Year,
		BaseSalary:    rec.BaseSalary,
		OvertimePay:   rec.OvertimePay,
		Bonus:         rec.Bonus,
		Deductions:    rec.Deductions,
		NetSalary:     rec.NetSalary,
		Status:        string(rec.Status),
		ProcessedDate: instantPtrToString(rec.ProcessedDate),
		PaymentDate:   instantPtrToString(rec.PaymentDate),
	}
}

// ProcessPayroll implements payroll.PayrollService. The employee must
// exist before any record is written; the calculator decides the figures.
func (p *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	breakdown, err := p.calculator.Calculate(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to calculate salary: %w", err)
	}

	now := time.Now().UTC()
	created, err := p.PayrollRepository.Create(ctx, payroll.PayrollRecord{
		EmployeeID:    req.EmployeeID,
		Month:         req.Month,
		Year:          req.Year,
		BaseSalary:    breakdown.BaseSalary,
		OvertimePay:   breakdown.OvertimePay,
		Bonus:         breakdown.Bonus,
		Deductions:    breakdown.Deductions,
		NetSalary:     breakdown.Net(),
		Status:        payroll.PayrollStatusProcessed,
		ProcessedDate: &now,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(created), nil
}

// MarkPayrollAsPaid implements payroll.PayrollService. Paying an
// already-paid record is a no-op; paying a draft is rejected.
func (p *PayrollServiceImpl) MarkPayrollAsPaid(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
	adminID, err := employeeIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := p.PayrollRepository.MarkPaid(ctx, id, adminID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	switch rec.Status {
	case payroll.PayrollStatusPaid:
		return toResponse(rec), nil
	default:
		return payroll.PayrollResponse{}, payroll.ErrInvalidStatusTransition
	}
}

// GetMyPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetMyPayroll(ctx context.Context) ([]payroll.PayrollResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := p.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// ListPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListPayroll(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := p.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}
