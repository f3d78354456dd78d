package response

import (
	"time"

	"protese_lab/internal/domain/entities"
)

type WorkflowStepResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type PatientResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Clinic          string                 `json:"clinic"`
	DoctorName      string                 `json:"doctor_name"`
	DoctorPhone     string                 `json:"doctor_phone,omitempty"`
	ProsthesisType  string                 `json:"prosthesis_type,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	ServiceValue    float64                `json:"service_value"`
	LaborCost       float64                `json:"labor_cost"`
	EntryDate       time.Time              `json:"entry_date"`
	DueDate         time.Time              `json:"due_date"`
	PaymentStatus   string                 `json:"payment_status"`
	WorkflowHistory []WorkflowStepResponse `json:"workflow_history"`
	CurrentStatus   string                 `json:"current_status"`
	IsActive        bool                   `json:"is_active"`
}

func FromPatient(p entities.Patient) PatientResponse {
	steps := make([]WorkflowStepResponse, 0, len(p.WorkflowHistory))
	for _, s := range p.WorkflowHistory {
		steps = append(steps, WorkflowStepResponse{
			ID:        s.ID,
			Status:    string(s.Status),
			Timestamp: s.Timestamp,
			Notes:     s.Notes,
		})
	}
	return PatientResponse{
		ID:              p.ID,
		Name:            p.Name,
		Clinic:          p.Clinic,
		DoctorName:      p.DoctorName,
		DoctorPhone:     p.DoctorPhone,
		ProsthesisType:  p.ProsthesisType,
		Notes:           p.Notes,
		ServiceValue:    p.ServiceValue,
		LaborCost:       p.LaborCost,
		EntryDate:       p.EntryDate,
		DueDate:         p.DueDate,
		PaymentStatus:   string(p.PaymentStatus),
		WorkflowHistory: steps,
		CurrentStatus:   string(p.CurrentStatus),
		IsActive:        p.IsActive,
	}
}

func FromPatients(patients []entities.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, FromPatient(p))
	}
	return out
}
