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

func TestPatientUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePatientInput{Name: "  ", Clinic: "Clinica X", DoctorName: "Dr. Joao"})
		if !errors.Is(err, ErrInvalidPatientName) {
			t.Fatalf("expected ErrInvalidPatientName, got %v", err)
		}
	})

	t.Run("missing clinic", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePatientInput{Name: "Maria", DoctorName: "Dr. Joao"})
		if !errors.Is(err, ErrInvalidClinic) {
			t.Fatalf("expected ErrInvalidClinic, got %v", err)
		}
	})

	t.Run("missing doctor", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePatientInput{Name: "Maria", Clinic: "Clinica X"})
		if !errors.Is(err, ErrInvalidDoctorName) {
			t.Fatalf("expected ErrInvalidDoctorName, got %v", err)
		}
	})

	t.Run("negative service value", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePatientInput{Name: "Maria", Clinic: "Clinica X", DoctorName: "Dr. Joao", ServiceValue: -1})
		if !errors.Is(err, ErrInvalidServiceValue) {
			t.Fatalf("expected ErrInvalidServiceValue, got %v", err)
		}
	})

	t.Run("create success seeds history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Patient{})).Return(nil)

		p, err := uc.Create(context.Background(), CreatePatientInput{
			Name:         " Maria Silva ",
			Clinic:       "Clinica X",
			DoctorName:   "Dr. Joao",
			ServiceValue: 1200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
		if p.Name != "Maria Silva" {
			t.Fatalf("expected trimmed name, got %q", p.Name)
		}
		if len(p.WorkflowHistory) != 1 {
			t.Fatalf("expected single seed step, got %d", len(p.WorkflowHistory))
		}
		if p.CurrentStatus != entities.StatusPlanoCera {
			t.Fatalf("expected plano_cera, got %q", p.CurrentStatus)
		}
		if !p.IsActive {
			t.Fatalf("expected new patient to be active")
		}
		if p.PaymentStatus != entities.PaymentStatusPendente {
			t.Fatalf("expected pendente, got %q", p.PaymentStatus)
		}
	})

	t.Run("repo save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Create(context.Background(), CreatePatientInput{Name: "Maria", Clinic: "Clinica X", DoctorName: "Dr. Joao"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPatientUseCase_AdvanceStatus(t *testing.T) {
	base := entities.Patient{
		ID:     "p-1",
		Name:   "Maria",
		Clinic: "Clinica X",
	}
	base.AppendStep(entities.WorkflowStep{ID: "s-1", Status: entities.StatusPlanoCera, Timestamp: time.Now().UTC()})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		_, err := uc.AdvanceStatus(context.Background(), "p-1", entities.WorkflowStatus("polimento"), "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Patient{}, nil)

		_, err := uc.AdvanceStatus(context.Background(), "missing", entities.StatusBarra, "")
		if !errors.Is(err, ErrPatientNotFound) {
			t.Fatalf("expected ErrPatientNotFound, got %v", err)
		}
	})

	t.Run("appends and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(base, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Patient{})).Return(nil)

		p, err := uc.AdvanceStatus(context.Background(), "p-1", entities.StatusFinalizado, "entregue")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.WorkflowHistory) != 2 {
			t.Fatalf("expected 2 steps, got %d", len(p.WorkflowHistory))
		}
		last, _ := p.LastStep()
		if p.CurrentStatus != last.Status || p.CurrentStatus != entities.StatusFinalizado {
			t.Fatalf("current status out of sync: %q vs %q", p.CurrentStatus, last.Status)
		}
		if p.IsActive {
			t.Fatalf("finalized order must be inactive")
		}
		if last.Notes != "entregue" {
			t.Fatalf("expected notes preserved, got %q", last.Notes)
		}
	})

	t.Run("finalizado is revocable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		done := base
		done.AppendStep(entities.WorkflowStep{ID: "s-2", Status: entities.StatusFinalizado, Timestamp: time.Now().UTC()})

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(done, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		p, err := uc.AdvanceStatus(context.Background(), "p-1", entities.StatusRemontarDentes, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsActive || p.CurrentStatus != entities.StatusRemontarDentes {
			t.Fatalf("expected reactivated rework order, got %q active=%v", p.CurrentStatus, p.IsActive)
		}
	})
}

func TestPatientUseCase_EditFields(t *testing.T) {
	base := entities.Patient{ID: "p-1", Name: "Maria", Clinic: "Clinica X", DoctorName: "Dr. Joao"}
	base.AppendStep(entities.WorkflowStep{ID: "s-1", Status: entities.StatusBarra, Timestamp: time.Now().UTC()})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPatientRepository(ctrl)
	uc := NewPatientUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(base, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	p, err := uc.EditFields(context.Background(), "p-1", EditPatientInput{
		Name:         "Maria Souza",
		Clinic:       "Clinica Y",
		DoctorName:   "Dra. Ana",
		ServiceValue: 900,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Maria Souza" || p.Clinic != "Clinica Y" || p.ServiceValue != 900 {
		t.Fatalf("fields not replaced: %+v", p)
	}
	if len(p.WorkflowHistory) != 1 || p.CurrentStatus != entities.StatusBarra {
		t.Fatalf("edit must not touch workflow history: %+v", p)
	}
}

func TestPatientUseCase_SettlePayment(t *testing.T) {
	base := entities.Patient{ID: "p-1", Name: "Maria", Clinic: "Clinica X", ProsthesisType: "Protese Total", ServiceValue: 1200}
	base.AppendStep(entities.WorkflowStep{ID: "s-1", Status: entities.StatusFinalizado, Timestamp: time.Now().UTC()})

	t.Run("without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(base, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		p, err := uc.SettlePayment(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected pago, got %q", p.PaymentStatus)
		}
	})

	t.Run("gateway failure keeps pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewPatientUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(base, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), "p-1", gomock.Any(), 1200.0).Return("", "", nil, errors.New("provider down"))

		_, err := uc.SettlePayment(context.Background(), "p-1")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("gateway success settles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewPatientUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(base, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), "p-1", gomock.Any(), 1200.0).Return("charge-1", "approved", nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		p, err := uc.SettlePayment(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected pago, got %q", p.PaymentStatus)
		}
	})
}

func TestPatientUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPatientUseCase(nil, nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidPatientID) {
			t.Fatalf("expected ErrInvalidPatientID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewPatientUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPatientUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPatientRepository(ctrl)
	uc := NewPatientUseCase(repo, nil)

	old := entities.Patient{ID: "old", EntryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	recent := entities.Patient{ID: "recent", EntryDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Patient{old, recent}, nil)

	patients, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 || patients[0].ID != "recent" {
		t.Fatalf("expected newest first, got %+v", patients)
	}
}
