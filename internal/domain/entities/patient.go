package entities

import "time"

// PaymentStatus represents whether the clinic settled the service order.
// It is independent of the production workflow.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusPago     PaymentStatus = "pago"
)

// Patient is the central service-order entity persisted in DynamoDB: one
// prosthesis job for one patient, tracked end-to-end.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Clinic and DoctorName are denormalized text snapshots of the registry at
// creation time; they are intentionally not foreign keys, so renaming a
// clinic never rewrites history.
type Patient struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Clinic         string         `json:"clinic"`
	DoctorName     string         `json:"doctor_name"`
	DoctorPhone    string         `json:"doctor_phone"`
	ProsthesisType string         `json:"prosthesis_type"`
	Notes          string         `json:"notes"`
	ServiceValue   float64        `json:"service_value"`
	LaborCost      float64        `json:"labor_cost"`
	EntryDate      time.Time      `json:"entry_date"`
	DueDate        time.Time      `json:"due_date"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	WorkflowHistory []WorkflowStep `json:"workflow_history"`
	CurrentStatus  WorkflowStatus `json:"current_status"`
	IsActive       bool           `json:"is_active"`
}

// LastStep returns the most recently appended workflow entry.
func (p Patient) LastStep() (WorkflowStep, bool) {
	if len(p.WorkflowHistory) == 0 {
		return WorkflowStep{}, false
	}
	return p.WorkflowHistory[len(p.WorkflowHistory)-1], true
}

// AppendStep records a new production stage and recomputes the derived
// CurrentStatus/IsActive fields. The history is append-only; storage order is
// insertion order.
func (p *Patient) AppendStep(step WorkflowStep) {
	p.WorkflowHistory = append(p.WorkflowHistory, step)
	p.CurrentStatus = step.Status
	p.IsActive = !step.Status.IsTerminal()
}
