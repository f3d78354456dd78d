package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrInvalidPatientID    = errors.New("invalid patient id")
	ErrInvalidPatientName  = errors.New("invalid patient name")
	ErrInvalidClinic       = errors.New("invalid clinic")
	ErrInvalidDoctorName   = errors.New("invalid doctor name")
	ErrInvalidServiceValue = errors.New("invalid service value")
	ErrInvalidStatus       = errors.New("invalid workflow status")
)

const seedStepNotes = "Cadastro inicial"

// CreatePatientInput carries the fields required to open a service order.
type CreatePatientInput struct {
	Name           string
	Clinic         string
	DoctorName     string
	DoctorPhone    string
	ProsthesisType string
	Notes          string
	ServiceValue   float64
	LaborCost      float64
	EntryDate      time.Time
	DueDate        time.Time
}

// EditPatientInput carries the descriptive/financial fields of an order.
// Workflow history is never editable through this path.
type EditPatientInput struct {
	Name           string
	Clinic         string
	DoctorName     string
	DoctorPhone    string
	ProsthesisType string
	Notes          string
	ServiceValue   float64
	LaborCost      float64
	DueDate        time.Time
}

// IPatientUseCase exposes the service-order workflow engine.
//
//   - Create opens an order with a single seed step at plano_cera.
//   - AdvanceStatus appends to the production log; any stage may follow any
//     other (the lab reopens finalized orders by simply advancing again).
//   - EditFields touches descriptive/financial fields only.
//   - SettlePayment flips the payment status to pago, registering a charge
//     with the external provider when one is configured.

type IPatientUseCase interface {
	Create(ctx context.Context, in CreatePatientInput) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	AdvanceStatus(ctx context.Context, id string, status entities.WorkflowStatus, notes string) (entities.Patient, error)
	EditFields(ctx context.Context, id string, in EditPatientInput) (entities.Patient, error)
	SettlePayment(ctx context.Context, id string) (entities.Patient, error)
	Delete(ctx context.Context, id string) error
}

type PatientUseCase struct {
	repo    interfaces.IPatientRepository
	gateway interfaces.IChargeGateway
}

var _ IPatientUseCase = (*PatientUseCase)(nil)

func NewPatientUseCase(repo interfaces.IPatientRepository, gateway interfaces.IChargeGateway) *PatientUseCase {
	return &PatientUseCase{repo: repo, gateway: gateway}
}

func (u *PatientUseCase) Create(ctx context.Context, in CreatePatientInput) (entities.Patient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Clinic = strings.TrimSpace(in.Clinic)
	in.DoctorName = strings.TrimSpace(in.DoctorName)

	if in.Name == "" {
		return entities.Patient{}, ErrInvalidPatientName
	}
	if in.Clinic == "" {
		return entities.Patient{}, ErrInvalidClinic
	}
	if in.DoctorName == "" {
		return entities.Patient{}, ErrInvalidDoctorName
	}
	if in.ServiceValue < 0 {
		return entities.Patient{}, ErrInvalidServiceValue
	}

	now := time.Now().UTC()
	entry := in.EntryDate
	if entry.IsZero() {
		entry = now
	}

	p := entities.Patient{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Clinic:         in.Clinic,
		DoctorName:     in.DoctorName,
		DoctorPhone:    strings.TrimSpace(in.DoctorPhone),
		ProsthesisType: strings.TrimSpace(in.ProsthesisType),
		Notes:          in.Notes,
		ServiceValue:   in.ServiceValue,
		LaborCost:      in.LaborCost,
		EntryDate:      entry,
		DueDate:        in.DueDate,
		PaymentStatus:  entities.PaymentStatusPendente,
	}
	p.AppendStep(entities.WorkflowStep{
		ID:        uuid.NewString(),
		Status:    entities.StatusPlanoCera,
		Timestamp: now,
		Notes:     seedStepNotes,
	})

	if err := u.repo.Save(ctx, p); err != nil {
		return entities.Patient{}, err
	}
	return p, nil
}

// List returns the full collection sorted by entry date, newest first.
func (u *PatientUseCase) List(ctx context.Context) ([]entities.Patient, error) {
	patients, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].EntryDate.After(patients[j].EntryDate)
	})
	return patients, nil
}

func (u *PatientUseCase) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Patient{}, ErrInvalidPatientID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.ID == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

// AdvanceStatus appends a new production step. No transition is rejected:
// the stage set is closed but the graph is permissive, including stepping
// away from finalizado to reopen an order.
func (u *PatientUseCase) AdvanceStatus(ctx context.Context, id string, status entities.WorkflowStatus, notes string) (entities.Patient, error) {
	if _, err := entities.ParseWorkflowStatus(string(status)); err != nil {
		return entities.Patient{}, ErrInvalidStatus
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}

	p.AppendStep(entities.WorkflowStep{
		ID:        uuid.NewString(),
		Status:    status,
		Timestamp: time.Now().UTC(),
		Notes:     notes,
	})

	if err := u.repo.Save(ctx, p); err != nil {
		return entities.Patient{}, err
	}
	log.Printf("[patient][usecase] status advanced patient_id=%s status=%s steps=%d", p.ID, p.CurrentStatus, len(p.WorkflowHistory))
	return p, nil
}

func (u *PatientUseCase) EditFields(ctx context.Context, id string, in EditPatientInput) (entities.Patient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Clinic = strings.TrimSpace(in.Clinic)
	in.DoctorName = strings.TrimSpace(in.DoctorName)

	if in.Name == "" {
		return entities.Patient{}, ErrInvalidPatientName
	}
	if in.Clinic == "" {
		return entities.Patient{}, ErrInvalidClinic
	}
	if in.DoctorName == "" {
		return entities.Patient{}, ErrInvalidDoctorName
	}
	if in.ServiceValue < 0 {
		return entities.Patient{}, ErrInvalidServiceValue
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}

	p.Name = in.Name
	p.Clinic = in.Clinic
	p.DoctorName = in.DoctorName
	p.DoctorPhone = strings.TrimSpace(in.DoctorPhone)
	p.ProsthesisType = strings.TrimSpace(in.ProsthesisType)
	p.Notes = in.Notes
	p.ServiceValue = in.ServiceValue
	p.LaborCost = in.LaborCost
	if !in.DueDate.IsZero() {
		p.DueDate = in.DueDate
	}

	if err := u.repo.Save(ctx, p); err != nil {
		return entities.Patient{}, err
	}
	return p, nil
}

// SettlePayment marks the order as paid. When a charge gateway is configured
// the charge is registered first; a gateway failure aborts the settlement and
// leaves the order pendente.
func (u *PatientUseCase) SettlePayment(ctx context.Context, id string) (entities.Patient, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}

	if u.gateway != nil {
		chargeID, chargeStatus, _, err := u.gateway.CreateCharge(ctx, p.ID, "Servico protetico: "+p.ProsthesisType, p.ServiceValue)
		if err != nil {
			log.Printf("[payment][usecase] charge gateway failed patient_id=%s err=%v", p.ID, err)
			return entities.Patient{}, err
		}
		log.Printf("[payment][usecase] charge registered patient_id=%s provider_charge_id=%s provider_status=%s", p.ID, chargeID, chargeStatus)
	}

	p.PaymentStatus = entities.PaymentStatusPago
	if err := u.repo.Save(ctx, p); err != nil {
		return entities.Patient{}, err
	}
	return p, nil
}

func (u *PatientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPatientID
	}
	return u.repo.Delete(ctx, id)
}
