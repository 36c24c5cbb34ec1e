package state

import (
	"testing"
)

func TestFindPatientByIDAnyCase(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	p, ok := s.FindPatient("p001")
	if !ok {
		t.Fatal("expected match for p001")
	}
	if p.Name != "Budi Santoso" {
		t.Fatalf("unexpected patient: %+v", p)
	}
}

func TestFindPatientByNameSubstring(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	p, ok := s.FindPatient("BUDI")
	if !ok {
		t.Fatal("expected match for BUDI")
	}
	if p.ID != "P001" {
		t.Fatalf("unexpected patient id: %s", p.ID)
	}

	if _, ok := s.FindPatient("nonexistent"); ok {
		t.Fatal("expected no match")
	}
}

func TestAppendBillSharesOtherCollections(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	before := s.Snapshot()

	s.AppendBill(Bill{ID: "B999", PatientID: "P003", Amount: 750000, ICDCode: "I10", Status: BillPending})
	after := s.Snapshot()

	if len(after.Bills) != len(before.Bills)+1 {
		t.Fatalf("expected %d bills, got %d", len(before.Bills)+1, len(after.Bills))
	}
	if &after.Bills[0] == &before.Bills[0] {
		t.Fatal("bills collection must be structurally replaced")
	}
	if &after.Patients[0] != &before.Patients[0] {
		t.Fatal("patients collection must be shared unchanged")
	}
	if &after.Staff[0] != &before.Staff[0] {
		t.Fatal("staff collection must be shared unchanged")
	}
}

func TestSetStaffShiftMutatesOnlyMatch(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	before := s.Snapshot()

	updated, ok := s.SetStaffShift("hartono", ShiftNight)
	if !ok {
		t.Fatal("expected staff match")
	}
	if updated.ID != "S001" || updated.CurrentShift != ShiftNight {
		t.Fatalf("unexpected update: %+v", updated)
	}

	after := s.Snapshot()
	for i, st := range after.Staff {
		if st.ID == "S001" {
			continue
		}
		if st != before.Staff[i] {
			t.Fatalf("staff %s must be unchanged", st.ID)
		}
	}
	if &after.Bills[0] != &before.Bills[0] {
		t.Fatal("bills collection must be shared unchanged")
	}

	if _, ok := s.SetStaffShift("nobody", ShiftMorning); ok {
		t.Fatal("expected no match")
	}
}

func TestAppendAuditPrepends(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	seedLen := len(s.AuditLog())

	s.AppendAudit("first")
	s.AppendAudit("second")

	logs := s.AuditLog()
	if len(logs) != seedLen+2 {
		t.Fatalf("expected %d lines, got %d", seedLen+2, len(logs))
	}
	if logs[0] != "second" || logs[1] != "first" {
		t.Fatalf("audit log must be newest first, got %v", logs[:2])
	}
}

func TestLabsForExactPatientID(t *testing.T) {
	t.Parallel()

	s := NewStore(Seed())
	labs := s.LabsFor("P002")
	if len(labs) != 1 || labs[0].ID != "L002" {
		t.Fatalf("unexpected labs: %+v", labs)
	}
	if labs := s.LabsFor("P003"); len(labs) != 0 {
		t.Fatalf("expected no labs for P003, got %+v", labs)
	}
}
