package entities

import (
	"errors"
	"time"
)

// WorkflowStatus represents one stage of the prosthesis production pipeline.
//
// Domain notes:
//   - The sequence below is the usual production order, but transitions are
//     not restricted to it: remontar_dentes sends a piece back into active
//     production, and the lab occasionally re-enters earlier stages.
//   - finalizado marks the order as delivered; it is "most recently observed"
//     rather than enforced terminal (a later step reopens the order).

type WorkflowStatus string

const (
	StatusPlanoCera          WorkflowStatus = "plano_cera"
	StatusMoldeiraIndividual WorkflowStatus = "moldeira_individual"
	StatusBarra              WorkflowStatus = "barra"
	StatusArmacao            WorkflowStatus = "armacao"
	StatusMontagemDentes     WorkflowStatus = "montagem_dentes"
	StatusAcrilizar          WorkflowStatus = "acrilizar"
	StatusRemontarDentes     WorkflowStatus = "remontar_dentes"
	StatusFinalizado         WorkflowStatus = "finalizado"
)

// AllWorkflowStatuses lists every stage in production order.
var AllWorkflowStatuses = []WorkflowStatus{
	StatusPlanoCera,
	StatusMoldeiraIndividual,
	StatusBarra,
	StatusArmacao,
	StatusMontagemDentes,
	StatusAcrilizar,
	StatusRemontarDentes,
	StatusFinalizado,
}

var ErrUnknownWorkflowStatus = errors.New("unknown workflow status")

// ParseWorkflowStatus validates a raw string against the closed stage set.
func ParseWorkflowStatus(raw string) (WorkflowStatus, error) {
	s := WorkflowStatus(raw)
	switch s {
	case StatusPlanoCera, StatusMoldeiraIndividual, StatusBarra, StatusArmacao,
		StatusMontagemDentes, StatusAcrilizar, StatusRemontarDentes, StatusFinalizado:
		return s, nil
	}
	return "", ErrUnknownWorkflowStatus
}

// IsTerminal reports whether the stage closes the order.
func (s WorkflowStatus) IsTerminal() bool {
	return s == StatusFinalizado
}

// IsRework reports whether the stage means the piece was sent back.
func (s WorkflowStatus) IsRework() bool {
	return s == StatusRemontarDentes
}

// StatusBucket groups stages for dashboard counters.
type StatusBucket int

const (
	BucketProduction StatusBucket = iota
	BucketRework
	BucketCompleted
)

// Bucket classifies the stage with an exhaustive switch so that adding a new
// stage forces this function to be revisited.
func (s WorkflowStatus) Bucket() StatusBucket {
	switch s {
	case StatusFinalizado:
		return BucketCompleted
	case StatusRemontarDentes:
		return BucketRework
	case StatusPlanoCera, StatusMoldeiraIndividual, StatusBarra, StatusArmacao,
		StatusMontagemDentes, StatusAcrilizar:
		return BucketProduction
	default:
		return BucketProduction
	}
}

// WorkflowStep is one append-only entry of a patient's production log.
// Once recorded it is never edited or removed.
type WorkflowStep struct {
	ID        string         `json:"id"`
	Status    WorkflowStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Notes     string         `json:"notes"`
}
