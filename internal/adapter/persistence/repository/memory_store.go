package repository

import (
	"context"
	"sync"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"
)

// MemoryStore is the local fallback behind the same repository interfaces as
// DynamoDB. It is used when no remote store is reachable, so the application
// keeps working in a degraded, non-durable mode.
//
// A single mutex guards all four collections; the access pattern is a single
// operator issuing sequential requests.
type MemoryStore struct {
	mu       sync.RWMutex
	patients map[string]entities.Patient
	expenses map[string]entities.Expense
	clinics  map[string]entities.Clinic
	services map[string]entities.ServiceItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		patients: map[string]entities.Patient{},
		expenses: map[string]entities.Expense{},
		clinics:  map[string]entities.Clinic{},
		services: map[string]entities.ServiceItem{},
	}
}

// Patients returns the Patient repository view of the store.
func (s *MemoryStore) Patients() interfaces.IPatientRepository { return memoryPatientRepo{s} }

// Expenses returns the Expense repository view of the store.
func (s *MemoryStore) Expenses() interfaces.IExpenseRepository { return memoryExpenseRepo{s} }

// Clinics returns the Clinic repository view of the store.
func (s *MemoryStore) Clinics() interfaces.IClinicRepository { return memoryClinicRepo{s} }

// ServiceItems returns the catalog repository view of the store.
func (s *MemoryStore) ServiceItems() interfaces.IServiceItemRepository { return memoryServiceItemRepo{s} }

type memoryPatientRepo struct{ s *MemoryStore }

var _ interfaces.IPatientRepository = memoryPatientRepo{}

func (r memoryPatientRepo) ListAll(_ context.Context) ([]entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		out = append(out, p)
	}
	return out, nil
}

func (r memoryPatientRepo) GetByID(_ context.Context, id string) (entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.patients[id], nil
}

func (r memoryPatientRepo) Save(_ context.Context, p entities.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.patients[p.ID] = p
	return nil
}

func (r memoryPatientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.patients, id)
	return nil
}

type memoryExpenseRepo struct{ s *MemoryStore }

var _ interfaces.IExpenseRepository = memoryExpenseRepo{}

func (r memoryExpenseRepo) ListAll(_ context.Context) ([]entities.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Expense, 0, len(r.s.expenses))
	for _, e := range r.s.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (r memoryExpenseRepo) Save(_ context.Context, e entities.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses[e.ID] = e
	return nil
}

func (r memoryExpenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.expenses, id)
	return nil
}

type memoryClinicRepo struct{ s *MemoryStore }

var _ interfaces.IClinicRepository = memoryClinicRepo{}

func (r memoryClinicRepo) ListAll(_ context.Context) ([]entities.Clinic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Clinic, 0, len(r.s.clinics))
	for _, c := range r.s.clinics {
		out = append(out, c)
	}
	return out, nil
}

func (r memoryClinicRepo) Save(_ context.Context, c entities.Clinic) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clinics[c.ID] = c
	return nil
}

func (r memoryClinicRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clinics, id)
	return nil
}

type memoryServiceItemRepo struct{ s *MemoryStore }

var _ interfaces.IServiceItemRepository = memoryServiceItemRepo{}

func (r memoryServiceItemRepo) ListAll(_ context.Context) ([]entities.ServiceItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.ServiceItem, 0, len(r.s.services))
	for _, it := range r.s.services {
		out = append(out, it)
	}
	return out, nil
}

func (r memoryServiceItemRepo) Save(_ context.Context, it entities.ServiceItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.services[it.ID] = it
	return nil
}

func (r memoryServiceItemRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.services, id)
	return nil
}
