package repository

import (
	"context"
	"testing"
	"time"

	"protese_lab/internal/domain/entities"
)

func TestMemoryStore_Patients(t *testing.T) {
	store := NewMemoryStore()
	repo := store.Patients()
	ctx := context.Background()

	p := entities.Patient{ID: "p-1", Name: "Maria", Clinic: "Clinica X"}
	p.AppendStep(entities.WorkflowStep{ID: "s-1", Status: entities.StatusPlanoCera, Timestamp: time.Now().UTC()})

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Maria" || got.CurrentStatus != entities.StatusPlanoCera {
		t.Fatalf("unexpected patient: %+v", got)
	}

	t.Run("absent id yields zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero patient, got %+v", got)
		}
	})

	t.Run("save overwrites by id", func(t *testing.T) {
		p.Name = "Maria Silva"
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 1 || all[0].Name != "Maria Silva" {
			t.Fatalf("unexpected list: %+v", all)
		}
	})

	t.Run("delete removes", func(t *testing.T) {
		if err := repo.Delete(ctx, "p-1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected empty store, got %+v", all)
		}
	})
}

func TestMemoryStore_CollectionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Expenses().Save(ctx, entities.Expense{ID: "e-1", Description: "Gesso", Amount: 80}); err != nil {
		t.Fatalf("save expense failed: %v", err)
	}
	if err := store.Clinics().Save(ctx, entities.Clinic{ID: "c-1", Name: "Clinica X"}); err != nil {
		t.Fatalf("save clinic failed: %v", err)
	}
	if err := store.ServiceItems().Save(ctx, entities.ServiceItem{ID: "s-1", Name: "Protese Total", Price: 1200}); err != nil {
		t.Fatalf("save service failed: %v", err)
	}

	patients, _ := store.Patients().ListAll(ctx)
	if len(patients) != 0 {
		t.Fatalf("expected no patients, got %d", len(patients))
	}

	expenses, _ := store.Expenses().ListAll(ctx)
	clinics, _ := store.Clinics().ListAll(ctx)
	services, _ := store.ServiceItems().ListAll(ctx)
	if len(expenses) != 1 || len(clinics) != 1 || len(services) != 1 {
		t.Fatalf("expected one item per collection, got %d/%d/%d", len(expenses), len(clinics), len(services))
	}
}
