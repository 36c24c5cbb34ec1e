package state

type PatientStatus string

const (
	PatientAdmitted   PatientStatus = "Admitted"
	PatientDischarged PatientStatus = "Discharged"
	PatientCritical   PatientStatus = "Critical"
)

type Patient struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        string        `json:"gender"`
	Diagnosis     string        `json:"diagnosis"`
	AdmissionDate string        `json:"admissionDate"`
	Status        PatientStatus `json:"status"`
}

type LabResult struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	TestName   string `json:"testName"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
	IsCritical bool   `json:"isCritical"`
	Timestamp  string `json:"timestamp"`
}

type BillStatus string

const (
	BillPending           BillStatus = "Pending"
	BillProcessed         BillStatus = "Processed"
	BillInsuranceApproved BillStatus = "Insurance_Approved"
)

// Bill amounts are integer currency units (IDR in the seed data).
type Bill struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	Amount      int        `json:"amount"`
	ICDCode     string     `json:"icdCode"`
	Status      BillStatus `json:"status"`
	Description string     `json:"description"`
}

type Medication struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Unit  string `json:"unit"`
}

type StaffRole string

const (
	RoleDoctor StaffRole = "Doctor"
	RoleNurse  StaffRole = "Nurse"
	RoleAdmin  StaffRole = "Admin"
)

type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
	ShiftOff       Shift = "Off"
)

type Staff struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         StaffRole `json:"role"`
	CurrentShift Shift     `json:"currentShift"`
	Specialty    string    `json:"specialty"`
}

// Snapshot is one immutable view of the hospital. A mutation replaces the
// changed collection with a fresh slice and shares the rest, so observers can
// detect change by identity comparison on the collection headers.
type Snapshot struct {
	Patients    []Patient    `json:"patients"`
	LabResults  []LabResult  `json:"labResults"`
	Bills       []Bill       `json:"bills"`
	Medications []Medication `json:"medications"`
	Staff       []Staff      `json:"staff"`
	AuditLog    []string     `json:"auditLog"`
}
