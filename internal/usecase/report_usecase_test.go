package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"protese_lab/internal/domain/entities"
	mock_interfaces "protese_lab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func patientAt(status entities.WorkflowStatus, value float64, entry time.Time) entities.Patient {
	p := entities.Patient{ID: "p", ServiceValue: value, EntryDate: entry}
	p.AppendStep(entities.WorkflowStep{ID: "s", Status: status, Timestamp: entry})
	return p
}

func TestBuildReport_EmptyCollections(t *testing.T) {
	r := BuildReport(nil, nil, time.Now())
	if r.ActiveCount != 0 || r.CompletedCount != 0 || r.ProductionCount != 0 || r.ReworkCount != 0 {
		t.Fatalf("expected zero counts: %+v", r)
	}
	if r.TotalRevenue != 0 || r.TotalExpenses != 0 || r.NetProfit != 0 {
		t.Fatalf("expected zero totals: %+v", r)
	}
	if len(r.StatusDistribution) != 0 {
		t.Fatalf("expected empty distribution: %+v", r.StatusDistribution)
	}
}

func TestBuildReport_CountsAndTotals(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	patients := []entities.Patient{
		patientAt(entities.StatusPlanoCera, 100, now),
		patientAt(entities.StatusBarra, 200, now),
		patientAt(entities.StatusRemontarDentes, 300, now),
		patientAt(entities.StatusFinalizado, 400, now),
	}
	expenses := []entities.Expense{
		{ID: "e1", Amount: 50, Date: now},
		{ID: "e2", Amount: 150, Date: now},
	}

	r := BuildReport(patients, expenses, now)

	if r.ActiveCount != 3 {
		t.Fatalf("expected 3 active, got %d", r.ActiveCount)
	}
	if r.CompletedCount != 1 {
		t.Fatalf("expected 1 completed, got %d", r.CompletedCount)
	}
	if r.ProductionCount != 2 {
		t.Fatalf("expected 2 in production, got %d", r.ProductionCount)
	}
	if r.ReworkCount != 1 {
		t.Fatalf("expected 1 rework, got %d", r.ReworkCount)
	}

	// Rework is active but not "in production".
	if r.ActiveCount != r.ProductionCount+r.ReworkCount {
		t.Fatalf("active (%d) must equal production (%d) + rework (%d)", r.ActiveCount, r.ProductionCount, r.ReworkCount)
	}

	if r.TotalRevenue != 1000 {
		t.Fatalf("expected revenue 1000, got %v", r.TotalRevenue)
	}
	if r.TotalExpenses != 200 {
		t.Fatalf("expected expenses 200, got %v", r.TotalExpenses)
	}
	if r.NetProfit != 800 {
		t.Fatalf("expected net profit 800, got %v", r.NetProfit)
	}
}

func TestBuildReport_MonthlySeries(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	patients := []entities.Patient{
		patientAt(entities.StatusPlanoCera, 100, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		patientAt(entities.StatusBarra, 250, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		// Other years are excluded from every bucket.
		patientAt(entities.StatusFinalizado, 999, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
	}
	expenses := []entities.Expense{
		{ID: "e1", Amount: 40, Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "e2", Amount: 60, Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	r := BuildReport(patients, expenses, now)

	if r.MonthlyRevenue[2] != 350 {
		t.Fatalf("expected March bucket 350, got %v", r.MonthlyRevenue[2])
	}
	for i, v := range r.MonthlyRevenue {
		if i != 2 && v != 0 {
			t.Fatalf("expected empty revenue bucket %d, got %v", i, v)
		}
	}
	if r.MonthlyExpenses[6] != 40 {
		t.Fatalf("expected July expenses 40, got %v", r.MonthlyExpenses[6])
	}

	// Totals still include every year.
	if r.TotalRevenue != 1349 {
		t.Fatalf("expected total revenue 1349, got %v", r.TotalRevenue)
	}
}

func TestBuildReport_YearAnchorIsUTC(t *testing.T) {
	// Just past midnight on New Year in UTC+13 is still the previous year in
	// UTC; normalizing the anchor keeps it in the same year as the stored
	// UTC entry dates.
	nzdt := time.FixedZone("NZDT", 13*3600)
	now := time.Date(2025, time.January, 1, 0, 30, 0, 0, nzdt).UTC()
	if now.Year() != 2024 {
		t.Fatalf("expected UTC anchor in 2024, got %v", now)
	}

	patients := []entities.Patient{
		patientAt(entities.StatusBarra, 100, time.Date(2024, time.December, 31, 10, 0, 0, 0, time.UTC)),
	}

	r := BuildReport(patients, nil, now)

	if r.MonthlyRevenue[11] != 100 {
		t.Fatalf("expected December bucket 100, got %v", r.MonthlyRevenue[11])
	}
}

func TestBuildReport_StatusDistribution(t *testing.T) {
	now := time.Now()
	patients := []entities.Patient{
		patientAt(entities.StatusPlanoCera, 0, now),
		patientAt(entities.StatusPlanoCera, 0, now),
		patientAt(entities.StatusFinalizado, 0, now),
	}

	r := BuildReport(patients, nil, now)

	if len(r.StatusDistribution) != 2 {
		t.Fatalf("zero statuses must be filtered, got %+v", r.StatusDistribution)
	}
	if r.StatusDistribution[0].Status != entities.StatusPlanoCera || r.StatusDistribution[0].Count != 2 {
		t.Fatalf("unexpected first slice: %+v", r.StatusDistribution[0])
	}
	if r.StatusDistribution[1].Status != entities.StatusFinalizado || r.StatusDistribution[1].Count != 1 {
		t.Fatalf("unexpected second slice: %+v", r.StatusDistribution[1])
	}
}

func TestReportUseCase_Dashboard(t *testing.T) {
	t.Run("patient fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewReportUseCase(patients, expenses)

		patients.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Dashboard(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewReportUseCase(patients, expenses)

		patients.EXPECT().ListAll(gomock.Any()).Return([]entities.Patient{patientAt(entities.StatusBarra, 100, time.Now())}, nil)
		expenses.EXPECT().ListAll(gomock.Any()).Return([]entities.Expense{{ID: "e", Amount: 30, Date: time.Now()}}, nil)

		r, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.TotalRevenue != 100 || r.TotalExpenses != 30 || r.NetProfit != 70 {
			t.Fatalf("unexpected totals: %+v", r)
		}
	})
}
