package usecase

import (
	"context"
	"errors"
	"testing"

	"protese_lab/internal/domain/entities"
	mock_interfaces "protese_lab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClinicUseCase_Save(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewClinicUseCase(nil)
		_, err := uc.Save(context.Background(), entities.Clinic{Name: "  "})
		if !errors.Is(err, ErrInvalidClinicName) {
			t.Fatalf("expected ErrInvalidClinicName, got %v", err)
		}
	})

	t.Run("assigns id on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClinicRepository(ctrl)
		uc := NewClinicUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Clinic{})).Return(nil)

		c, err := uc.Save(context.Background(), entities.Clinic{Name: "Clinica X", DoctorName: "Dr. Joao"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("keeps id on upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClinicRepository(ctrl)
		uc := NewClinicUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		c, err := uc.Save(context.Background(), entities.Clinic{ID: "c-1", Name: "Clinica X"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "c-1" {
			t.Fatalf("expected id preserved, got %q", c.ID)
		}
	})
}

func TestServiceItemUseCase_Save(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc := NewServiceItemUseCase(nil)
		_, err := uc.Save(context.Background(), entities.ServiceItem{Name: "Protese Total", Price: -1})
		if !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceItemRepository(ctrl)
		uc := NewServiceItemUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.Save(context.Background(), entities.ServiceItem{Name: "Protese Total", Price: 1200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.Price != 1200 {
			t.Fatalf("unexpected item: %+v", s)
		}
	})
}

func TestRegistryList_SortedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClinicRepository(ctrl)
	uc := NewClinicUseCase(repo)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Clinic{
		{ID: "2", Name: "Sorriso"},
		{ID: "1", Name: "Alvorada"},
	}, nil)

	clinics, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clinics[0].Name != "Alvorada" {
		t.Fatalf("expected alphabetical order, got %+v", clinics)
	}
}
