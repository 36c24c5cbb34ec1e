package state

import (
	"strings"
	"sync"
)

// Store owns the current Snapshot. Conversation turns are serialized by the
// orchestrator, so there is a single writer; the read lock only covers
// dashboard readers observing mid-turn.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

// Snapshot returns the current snapshot. Collections are shared, never
// copied; callers must treat them as read-only.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// FindPatient matches a case-insensitive exact id, or failing that a
// case-insensitive substring of the patient name. First match wins.
func (s *Store) FindPatient(identifier string) (Patient, bool) {
	search := strings.ToLower(strings.TrimSpace(identifier))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.snap.Patients {
		if strings.ToLower(p.ID) == search || strings.Contains(strings.ToLower(p.Name), search) {
			return p, true
		}
	}
	return Patient{}, false
}

// FindMedication matches a case-insensitive substring of the medication name.
func (s *Store) FindMedication(name string) (Medication, bool) {
	search := strings.ToLower(strings.TrimSpace(name))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.snap.Medications {
		if strings.Contains(strings.ToLower(m.Name), search) {
			return m, true
		}
	}
	return Medication{}, false
}

// LabsFor returns all lab results whose patientId matches exactly.
func (s *Store) LabsFor(patientID string) []LabResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []LabResult
	for _, l := range s.snap.LabResults {
		if l.PatientID == patientID {
			out = append(out, l)
		}
	}
	return out
}

// AppendBill installs a snapshot whose bill collection is a fresh slice with
// the new bill appended. All other collections are shared unchanged.
func (s *Store) AppendBill(b Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bills := make([]Bill, 0, len(s.snap.Bills)+1)
	bills = append(bills, s.snap.Bills...)
	bills = append(bills, b)
	s.snap.Bills = bills
}

// SetStaffShift matches a case-insensitive substring of the staff name and,
// on a hit, installs a snapshot whose staff collection replaces only the
// matched record. Returns the updated record.
func (s *Store) SetStaffShift(name string, shift Shift) (Staff, bool) {
	search := strings.ToLower(strings.TrimSpace(name))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.snap.Staff {
		if !strings.Contains(strings.ToLower(st.Name), search) {
			continue
		}
		staff := make([]Staff, len(s.snap.Staff))
		copy(staff, s.snap.Staff)
		staff[i].CurrentShift = shift
		s.snap.Staff = staff
		return staff[i], true
	}
	return Staff{}, false
}

// AppendAudit prepends one line to the audit log, newest first.
func (s *Store) AppendAudit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]string, 0, len(s.snap.AuditLog)+1)
	logs = append(logs, line)
	logs = append(logs, s.snap.AuditLog...)
	s.snap.AuditLog = logs
}

// AuditLog returns the audit log, newest first.
func (s *Store) AuditLog() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.AuditLog
}
