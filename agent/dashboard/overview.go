// Package dashboard derives the live summary the UI renders next to the
// chat transcript. Everything here is computed from one snapshot; nothing is
// cached or stored.
package dashboard

import (
	statex "github.com/wardops/simrs-agents/agent/state"
)

// LowStockThreshold marks medications that need a reorder alert.
const LowStockThreshold = 100

type StatusTally struct {
	Admitted   int `json:"admitted"`
	Critical   int `json:"critical"`
	Discharged int `json:"discharged"`
}

// CriticalLab pairs a flagged lab result with the owning patient's name.
// Dangling patient references fall back to the raw patient id.
type CriticalLab struct {
	PatientName string `json:"patientName"`
	TestName    string `json:"testName"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
}

type Overview struct {
	TotalPatients int                 `json:"totalPatients"`
	PatientStatus StatusTally         `json:"patientStatus"`
	PendingBills  int                 `json:"pendingBills"`
	CriticalLabs  []CriticalLab       `json:"criticalLabs"`
	LowStock      []statex.Medication `json:"lowStock"`
}

// Build computes the overview from one snapshot.
func Build(snap statex.Snapshot) Overview {
	out := Overview{TotalPatients: len(snap.Patients)}

	names := make(map[string]string, len(snap.Patients))
	for _, p := range snap.Patients {
		names[p.ID] = p.Name
		switch p.Status {
		case statex.PatientAdmitted:
			out.PatientStatus.Admitted++
		case statex.PatientCritical:
			out.PatientStatus.Critical++
		case statex.PatientDischarged:
			out.PatientStatus.Discharged++
		}
	}

	for _, b := range snap.Bills {
		if b.Status == statex.BillPending {
			out.PendingBills++
		}
	}

	for _, l := range snap.LabResults {
		if !l.IsCritical {
			continue
		}
		name := names[l.PatientID]
		if name == "" {
			name = l.PatientID
		}
		out.CriticalLabs = append(out.CriticalLabs, CriticalLab{
			PatientName: name,
			TestName:    l.TestName,
			Value:       l.Value,
			Unit:        l.Unit,
		})
	}

	for _, m := range snap.Medications {
		if m.Stock < LowStockThreshold {
			out.LowStock = append(out.LowStock, m)
		}
	}

	return out
}
