package services

import (
	"context"
	"fmt"

	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/gocarina/gocsv"
)

// expenseReportRow is one line of the periodic CSV export.
type expenseReportRow struct {
	Employee   string `csv:"Employee"`
	Department string `csv:"Department"`
	Category   string `csv:"Category"`
	Amount     string `csv:"Amount"`
	Status     string `csv:"Status"`
	Submitted  string `csv:"Submitted"`
}

type reportService struct {
	expenseRepo    portsrepo.ExpenseReader
	userRepo       portsrepo.UserReader
	departmentRepo portsrepo.DepartmentReader
}

// NewReportService creates a new ReportService.
func NewReportService(er portsrepo.ExpenseReader, ur portsrepo.UserReader, dr portsrepo.DepartmentReader) portssvc.ReportSvcFacade {
	return &reportService{expenseRepo: er, userRepo: ur, departmentRepo: dr}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// ExpenseReportCSV renders all expenses for (month, year) as CSV. Owner and
// department names are resolved once each and cached for the run.
func (s *reportService) ExpenseReportCSV(ctx context.Context, month, year int) ([]byte, string, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, "", err
	}

	expenses, err := s.expenseRepo.ListExpensesForPeriod(ctx, nil, month, year)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses for report: %w", err)
	}

	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list departments for report: %w", err)
	}
	departmentNames := make(map[string]string, len(departments))
	for _, d := range departments {
		departmentNames[d.DepartmentID] = d.Name
	}

	userNames := make(map[string]string)
	rows := make([]expenseReportRow, 0, len(expenses))
	for _, e := range expenses {
		name, ok := userNames[e.OwnerID]
		if !ok {
			name = e.OwnerID
			if owner, err := s.userRepo.FindUserByID(ctx, e.OwnerID); err == nil {
				name = owner.Name
			}
			userNames[e.OwnerID] = name
		}

		deptName, ok := departmentNames[e.DepartmentID]
		if !ok {
			deptName = e.DepartmentID
		}

		rows = append(rows, expenseReportRow{
			Employee:   name,
			Department: deptName,
			Category:   e.Category,
			Amount:     e.Amount.StringFixed(2),
			Status:     string(e.Status),
			Submitted:  e.CreatedAt.Format("2006-01-02"),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render report CSV: %w", err)
	}

	filename := fmt.Sprintf("expense-report-%d-%d.csv", month, year)
	return data, filename, nil
}
