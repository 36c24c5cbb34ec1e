package state

// Seed returns the simulated hospital the session starts from. Entity ids
// and values are fixed so transcripts are reproducible across runs.
func Seed() Snapshot {
	return Snapshot{
		Patients: []Patient{
			{ID: "P001", Name: "Budi Santoso", Age: 45, Gender: "M", Diagnosis: "Type 2 Diabetes", AdmissionDate: "2023-10-25", Status: PatientAdmitted},
			{ID: "P002", Name: "Siti Aminah", Age: 62, Gender: "F", Diagnosis: "Hypertension Crisis", AdmissionDate: "2023-10-26", Status: PatientCritical},
			{ID: "P003", Name: "Andi Pratama", Age: 28, Gender: "M", Diagnosis: "Dengue Fever", AdmissionDate: "2023-10-27", Status: PatientAdmitted},
		},
		LabResults: []LabResult{
			{ID: "L001", PatientID: "P001", TestName: "HbA1c", Value: "8.5", Unit: "%", IsCritical: true, Timestamp: "2023-10-25 09:00"},
			{ID: "L002", PatientID: "P002", TestName: "Blood Pressure", Value: "180/110", Unit: "mmHg", IsCritical: true, Timestamp: "2023-10-26 14:30"},
		},
		Bills: []Bill{
			{ID: "B001", PatientID: "P001", Amount: 1500000, ICDCode: "E11.9", Status: BillPending, Description: "Initial Care & Insulin"},
		},
		Medications: []Medication{
			{ID: "M001", Name: "Metformin", Stock: 500, Unit: "tabs"},
			{ID: "M002", Name: "Insulin Glargine", Stock: 45, Unit: "pens"},
			{ID: "M003", Name: "Paracetamol", Stock: 1200, Unit: "tabs"},
			{ID: "M004", Name: "Amlodipine", Stock: 300, Unit: "tabs"},
		},
		Staff: []Staff{
			{ID: "S001", Name: "Dr. Hartono", Role: RoleDoctor, CurrentShift: ShiftMorning, Specialty: "Internal Medicine"},
			{ID: "S002", Name: "Ns. Rina", Role: RoleNurse, CurrentShift: ShiftMorning, Specialty: "ICU"},
			{ID: "S003", Name: "Dr. Sarah", Role: RoleDoctor, CurrentShift: ShiftOff, Specialty: "Cardiology"},
		},
		AuditLog: []string{
			"[SYSTEM] Security by Design: Initialized Encrypted Data Store.",
			"[AUDIT] COBIT APO02: Strategy alignment check passed.",
		},
	}
}
