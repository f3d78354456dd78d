package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClinicID        = errors.New("invalid clinic id")
	ErrInvalidClinicName      = errors.New("invalid clinic name")
	ErrInvalidServiceItemID   = errors.New("invalid service item id")
	ErrInvalidServiceItemName = errors.New("invalid service item name")
	ErrInvalidServicePrice    = errors.New("invalid service price")
)

// IClinicUseCase exposes the partner-clinic registry. Clinics are plain
// reference data: deleting one never touches the service orders that copied
// its name.

type IClinicUseCase interface {
	Save(ctx context.Context, c entities.Clinic) (entities.Clinic, error)
	List(ctx context.Context) ([]entities.Clinic, error)
	Delete(ctx context.Context, id string) error
}

type ClinicUseCase struct {
	repo interfaces.IClinicRepository
}

var _ IClinicUseCase = (*ClinicUseCase)(nil)

func NewClinicUseCase(repo interfaces.IClinicRepository) *ClinicUseCase {
	return &ClinicUseCase{repo: repo}
}

func (u *ClinicUseCase) Save(ctx context.Context, c entities.Clinic) (entities.Clinic, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.DoctorName = strings.TrimSpace(c.DoctorName)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return entities.Clinic{}, ErrInvalidClinicName
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return entities.Clinic{}, err
	}
	return c, nil
}

func (u *ClinicUseCase) List(ctx context.Context) ([]entities.Clinic, error) {
	clinics, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clinics, func(i, j int) bool {
		return clinics[i].Name < clinics[j].Name
	})
	return clinics, nil
}

func (u *ClinicUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClinicID
	}
	return u.repo.Delete(ctx, id)
}

// IServiceItemUseCase exposes the service catalog. Prices are copied into
// orders at creation time and decoupled afterwards.

type IServiceItemUseCase interface {
	Save(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error)
	List(ctx context.Context) ([]entities.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}

type ServiceItemUseCase struct {
	repo interfaces.IServiceItemRepository
}

var _ IServiceItemUseCase = (*ServiceItemUseCase)(nil)

func NewServiceItemUseCase(repo interfaces.IServiceItemRepository) *ServiceItemUseCase {
	return &ServiceItemUseCase{repo: repo}
}

func (u *ServiceItemUseCase) Save(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.ServiceItem{}, ErrInvalidServiceItemName
	}
	if s.Price < 0 {
		return entities.ServiceItem{}, ErrInvalidServicePrice
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.ServiceItem{}, err
	}
	return s, nil
}

func (u *ServiceItemUseCase) List(ctx context.Context) ([]entities.ServiceItem, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (u *ServiceItemUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceItemID
	}
	return u.repo.Delete(ctx, id)
}
