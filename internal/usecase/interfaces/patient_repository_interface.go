package interfaces

import (
	"context"

	"protese_lab/internal/domain/entities"
)

// IPatientRepository abstracts document-store persistence for Patient.
//
// The store contract is intentionally narrow: full-collection reads,
// upsert-by-id writes and hard deletes. Callers sort and filter in memory.
//
// GetByID returns a zero-value Patient (empty ID) when the id is absent;
// Delete of an absent id is a no-op.

type IPatientRepository interface {
	ListAll(ctx context.Context) ([]entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	Save(ctx context.Context, p entities.Patient) error
	Delete(ctx context.Context, id string) error
}
