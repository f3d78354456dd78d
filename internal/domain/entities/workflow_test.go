package entities

import (
	"testing"
	"time"
)

func TestParseWorkflowStatus(t *testing.T) {
	for _, s := range AllWorkflowStatuses {
		got, err := ParseWorkflowStatus(string(s))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("expected %q, got %q", s, got)
		}
	}

	if _, err := ParseWorkflowStatus("polimento"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestStatusClassification(t *testing.T) {
	for _, s := range AllWorkflowStatuses {
		if s.IsTerminal() != (s == StatusFinalizado) {
			t.Fatalf("IsTerminal wrong for %q", s)
		}
		if s.IsRework() != (s == StatusRemontarDentes) {
			t.Fatalf("IsRework wrong for %q", s)
		}
	}
}

func TestStatusBucket(t *testing.T) {
	cases := map[WorkflowStatus]StatusBucket{
		StatusPlanoCera:          BucketProduction,
		StatusMoldeiraIndividual: BucketProduction,
		StatusBarra:              BucketProduction,
		StatusArmacao:            BucketProduction,
		StatusMontagemDentes:     BucketProduction,
		StatusAcrilizar:          BucketProduction,
		StatusRemontarDentes:     BucketRework,
		StatusFinalizado:         BucketCompleted,
	}
	for s, want := range cases {
		if got := s.Bucket(); got != want {
			t.Fatalf("bucket for %q: expected %v, got %v", s, want, got)
		}
	}
}

func TestAppendStepKeepsDerivedFieldsInSync(t *testing.T) {
	p := Patient{}
	statuses := []WorkflowStatus{
		StatusPlanoCera, StatusBarra, StatusFinalizado, StatusRemontarDentes, StatusFinalizado,
	}

	for i, s := range statuses {
		p.AppendStep(WorkflowStep{ID: "step", Status: s, Timestamp: time.Now()})

		if len(p.WorkflowHistory) != i+1 {
			t.Fatalf("expected %d steps, got %d", i+1, len(p.WorkflowHistory))
		}
		last, ok := p.LastStep()
		if !ok {
			t.Fatalf("expected a last step")
		}
		if p.CurrentStatus != last.Status {
			t.Fatalf("current status %q out of sync with last step %q", p.CurrentStatus, last.Status)
		}
		if p.IsActive != (p.CurrentStatus != StatusFinalizado) {
			t.Fatalf("is_active out of sync at step %d (status %q)", i, p.CurrentStatus)
		}
	}

	// finalizado is revocable: the rework step above reactivated the order.
	if p.CurrentStatus != StatusFinalizado || p.IsActive {
		t.Fatalf("expected finalized inactive order at the end, got %q active=%v", p.CurrentStatus, p.IsActive)
	}
}
