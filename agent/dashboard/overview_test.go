package dashboard

import (
	"testing"

	statex "github.com/wardops/simrs-agents/agent/state"
)

func TestBuildFromSeed(t *testing.T) {
	t.Parallel()

	got := Build(statex.Seed())

	if got.TotalPatients != 3 {
		t.Fatalf("expected 3 patients, got %d", got.TotalPatients)
	}
	if got.PatientStatus.Admitted != 2 || got.PatientStatus.Critical != 1 || got.PatientStatus.Discharged != 0 {
		t.Fatalf("unexpected status tally: %+v", got.PatientStatus)
	}
	if got.PendingBills != 1 {
		t.Fatalf("expected 1 pending bill, got %d", got.PendingBills)
	}
	if len(got.CriticalLabs) != 2 {
		t.Fatalf("expected 2 critical labs, got %d", len(got.CriticalLabs))
	}
	if got.CriticalLabs[1].PatientName != "Siti Aminah" {
		t.Fatalf("unexpected critical lab owner: %+v", got.CriticalLabs[1])
	}
	if len(got.LowStock) != 1 || got.LowStock[0].ID != "M002" {
		t.Fatalf("expected only M002 below threshold, got %+v", got.LowStock)
	}
}

func TestBuildDanglingLabReference(t *testing.T) {
	t.Parallel()

	snap := statex.Seed()
	snap.LabResults = append(snap.LabResults, statex.LabResult{
		ID: "L099", PatientID: "P999", TestName: "Troponin", Value: "2.1", Unit: "ng/mL", IsCritical: true,
	})

	got := Build(snap)
	last := got.CriticalLabs[len(got.CriticalLabs)-1]
	if last.PatientName != "P999" {
		t.Fatalf("dangling reference must fall back to the id, got %q", last.PatientName)
	}
}
