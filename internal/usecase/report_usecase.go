package usecase

import (
	"context"
	"time"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"
)

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status entities.WorkflowStatus `json:"status"`
	Count  int                     `json:"count"`
}

// DashboardReport aggregates the KPIs shown on the dashboard. It is a full
// recompute over the complete collections on every refresh; there is no
// incremental state to drift.
type DashboardReport struct {
	ActiveCount     int `json:"active_count"`
	CompletedCount  int `json:"completed_count"`
	ProductionCount int `json:"production_count"`
	ReworkCount     int `json:"rework_count"`

	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`

	// Calendar-month buckets (January first) for the current year only.
	MonthlyRevenue  [12]float64 `json:"monthly_revenue"`
	MonthlyExpenses [12]float64 `json:"monthly_expenses"`

	StatusDistribution []StatusCount `json:"status_distribution"`
}

// IReportUseCase computes the dashboard from the persisted collections.

type IReportUseCase interface {
	Dashboard(ctx context.Context) (DashboardReport, error)
}

type ReportUseCase struct {
	patients interfaces.IPatientRepository
	expenses interfaces.IExpenseRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(patients interfaces.IPatientRepository, expenses interfaces.IExpenseRepository) *ReportUseCase {
	return &ReportUseCase{patients: patients, expenses: expenses}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (DashboardReport, error) {
	patients, err := u.patients.ListAll(ctx)
	if err != nil {
		return DashboardReport{}, err
	}
	expenses, err := u.expenses.ListAll(ctx)
	if err != nil {
		return DashboardReport{}, err
	}
	return BuildReport(patients, expenses, time.Now().UTC()), nil
}

// BuildReport derives every dashboard figure from the in-memory collections.
// now anchors the "current calendar year" for the monthly series; entries
// from other years are excluded from every bucket.
func BuildReport(patients []entities.Patient, expenses []entities.Expense, now time.Time) DashboardReport {
	r := DashboardReport{}
	year := now.Year()

	byStatus := map[entities.WorkflowStatus]int{}

	for _, p := range patients {
		if p.IsActive {
			r.ActiveCount++
		}
		switch p.CurrentStatus.Bucket() {
		case entities.BucketCompleted:
			r.CompletedCount++
		case entities.BucketRework:
			r.ReworkCount++
		case entities.BucketProduction:
			r.ProductionCount++
		}

		// Revenue counts every order regardless of payment status.
		r.TotalRevenue += p.ServiceValue
		if p.EntryDate.Year() == year {
			r.MonthlyRevenue[p.EntryDate.Month()-1] += p.ServiceValue
		}

		byStatus[p.CurrentStatus]++
	}

	for _, e := range expenses {
		r.TotalExpenses += e.Amount
		if e.Date.Year() == year {
			r.MonthlyExpenses[e.Date.Month()-1] += e.Amount
		}
	}

	r.NetProfit = r.TotalRevenue - r.TotalExpenses

	// Stable production order, zero statuses omitted for presentation.
	for _, s := range entities.AllWorkflowStatuses {
		if n := byStatus[s]; n > 0 {
			r.StatusDistribution = append(r.StatusDistribution, StatusCount{Status: s, Count: n})
		}
	}
	return r
}
