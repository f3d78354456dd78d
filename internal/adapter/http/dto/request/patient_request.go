package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// dateLayouts accepted on input: plain HTML date inputs and full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// PatientRequest is the payload for creating or editing a service order.
type PatientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Clinic         string  `json:"clinic" binding:"required"`
	DoctorName     string  `json:"doctor_name" binding:"required"`
	DoctorPhone    string  `json:"doctor_phone"`
	ProsthesisType string  `json:"prosthesis_type"`
	Notes          string  `json:"notes"`
	ServiceValue   float64 `json:"service_value"`
	LaborCost      float64 `json:"labor_cost"`
	EntryDate      string  `json:"entry_date"`
	DueDate        string  `json:"due_date"`
}

func (r PatientRequest) ResolveEntryDate() (time.Time, error) {
	return parseDate(r.EntryDate)
}

func (r PatientRequest) ResolveDueDate() (time.Time, error) {
	return parseDate(r.DueDate)
}

// AdvanceStatusRequest moves a service order to a new production stage.
type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
