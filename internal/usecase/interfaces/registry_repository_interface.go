package interfaces

import (
	"context"

	"protese_lab/internal/domain/entities"
)

// IClinicRepository abstracts document-store persistence for the partner
// clinic registry.

type IClinicRepository interface {
	ListAll(ctx context.Context) ([]entities.Clinic, error)
	Save(ctx context.Context, c entities.Clinic) error
	Delete(ctx context.Context, id string) error
}

// IServiceItemRepository abstracts document-store persistence for the
// service catalog.

type IServiceItemRepository interface {
	ListAll(ctx context.Context) ([]entities.ServiceItem, error)
	Save(ctx context.Context, s entities.ServiceItem) error
	Delete(ctx context.Context, id string) error
}
