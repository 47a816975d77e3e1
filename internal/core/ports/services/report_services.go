package services

import "context"

// ReportSvcFacade produces the periodic expense export.
type ReportSvcFacade interface {
	// ExpenseReportCSV renders all expenses for (month, year) as CSV and
	// returns the bytes with a suggested filename.
	ExpenseReportCSV(ctx context.Context, month, year int) ([]byte, string, error)
}
