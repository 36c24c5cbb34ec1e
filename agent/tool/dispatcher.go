package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/wardops/simrs-agents/agent/contract"
	statex "github.com/wardops/simrs-agents/agent/state"
)

const unknownFunctionError = "Unknown function"

// variant executes one tool against the store. It returns the result payload
// or a lookup error, plus the audit line to record. Decode failures and
// panics surface as error results with no audit line.
type variant func(d *Dispatcher, args map[string]any) (any, string, error)

// Dispatcher resolves model-issued function calls against the hospital
// store. Calls run sequentially in the order received; a failing call never
// aborts its siblings.
type Dispatcher struct {
	store  *statex.Store
	amount func() int
	now    func() time.Time
	table  map[Name]variant
}

type Option func(*Dispatcher)

// WithAmountSource overrides the billing amount generator (tests pin it).
func WithAmountSource(fn func() int) Option {
	return func(d *Dispatcher) { d.amount = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(d *Dispatcher) { d.now = fn }
}

func NewDispatcher(store *statex.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store: store,
		amount: func() int {
			// [500000, 5500000), simulated iDRG estimation
			return rand.IntN(5000000) + 500000
		},
		now: time.Now,
	}
	d.table = map[Name]variant{
		NameGetPatientData:        (*Dispatcher).getPatientData,
		NameCreateBillingProposal: (*Dispatcher).createBillingProposal,
		NameCheckMedicationStock:  (*Dispatcher).checkMedicationStock,
		NameAnalyzeCriticalLab:    (*Dispatcher).analyzeCriticalLab,
		NameScheduleStaff:         (*Dispatcher).scheduleStaff,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

func (d *Dispatcher) Execute(ctx context.Context, reqs []contractx.ToolRequest) []contractx.ToolResult {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, d.executeOne(req))
	}
	return results
}

func (d *Dispatcher) executeOne(req contractx.ToolRequest) (res contractx.ToolResult) {
	res = contractx.ToolResult{ID: req.ID, Tool: req.Tool}
	defer func() {
		if r := recover(); r != nil {
			res.Result = nil
			res.Error = fmt.Sprint(r)
			log.Error().Str("tool", req.Tool).Interface("panic", r).Msg("tool call panicked")
		}
	}()

	v, ok := d.table[Name(req.Tool)]
	if !ok {
		// not an agent action, so no audit line
		res.Error = unknownFunctionError
		return res
	}

	out, audit, err := v(d, req.Args)
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Result = out
	}
	if audit != "" {
		d.store.AppendAudit(audit)
	}
	log.Debug().Str("tool", req.Tool).Bool("ok", err == nil).Msg("tool call executed")
	return res
}

/* ------------------------------ variants ------------------------------ */

type getPatientDataArgs struct {
	Identifier string `json:"identifier"`
}

func (d *Dispatcher) getPatientData(args map[string]any) (any, string, error) {
	in, err := decodeArgs[getPatientDataArgs](args)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(in.Identifier) == "" {
		return nil, "", errors.New("identifier is required")
	}

	patient, ok := d.store.FindPatient(in.Identifier)
	if !ok {
		return nil, fmt.Sprintf("[AGENT 1] EMR Search failed for '%s'.", in.Identifier), errors.New("Patient not found")
	}
	return patient, fmt.Sprintf("[AGENT 1] Accessed EMR for patient %s.", patient.Name), nil
}

type createBillingProposalArgs struct {
	PatientID    string `json:"patientId"`
	Diagnosis    string `json:"diagnosis"`
	Intervention string `json:"intervention"`
}

// BillingProposalResult mirrors the shape the model is prompted to expect.
type BillingProposalResult struct {
	Status string `json:"status"`
	BillID string `json:"billId"`
	Amount int    `json:"amount"`
	ICD    string `json:"icd"`
}

func (d *Dispatcher) createBillingProposal(args map[string]any) (any, string, error) {
	in, err := decodeArgs[createBillingProposalArgs](args)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, "", errors.New("patientId is required")
	}
	if strings.TrimSpace(in.Diagnosis) == "" {
		return nil, "", errors.New("diagnosis is required")
	}

	cost := d.amount()
	bill := statex.Bill{
		ID:        fmt.Sprintf("B%d", d.now().UnixMilli()),
		PatientID: in.PatientID,
		Amount:    cost,
		// fixed placeholder; real grouping is out of scope
		ICDCode:     "I10",
		Status:      statex.BillPending,
		Description: fmt.Sprintf("Care for %s - %s", in.Diagnosis, in.Intervention),
	}
	d.store.AppendBill(bill)

	result := BillingProposalResult{Status: "Proposal Created", BillID: bill.ID, Amount: cost, ICD: bill.ICDCode}
	return result, fmt.Sprintf("[AGENT 1 - iDRG] Generated billing proposal for %s. Cost: %d", in.PatientID, cost), nil
}

type checkMedicationStockArgs struct {
	MedicationName string `json:"medicationName"`
}

func (d *Dispatcher) checkMedicationStock(args map[string]any) (any, string, error) {
	in, err := decodeArgs[checkMedicationStockArgs](args)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(in.MedicationName) == "" {
		return nil, "", errors.New("medicationName is required")
	}

	med, ok := d.store.FindMedication(in.MedicationName)
	if !ok {
		return nil, fmt.Sprintf("[AGENT 2] Medication '%s' not found in inventory.", in.MedicationName), errors.New("Medication not found")
	}
	return med, fmt.Sprintf("[AGENT 2] Checked stock for %s: %d remaining.", med.Name, med.Stock), nil
}

type analyzeCriticalLabArgs struct {
	PatientID string `json:"patientId"`
}

type CriticalLabResult struct {
	Status          string             `json:"status"`
	CriticalResults []statex.LabResult `json:"criticalResults"`
	Action          string             `json:"action"`
}

type NormalLabResult struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func (d *Dispatcher) analyzeCriticalLab(args map[string]any) (any, string, error) {
	in, err := decodeArgs[analyzeCriticalLabArgs](args)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, "", errors.New("patientId is required")
	}

	labs := d.store.LabsFor(in.PatientID)
	var critical []statex.LabResult
	for _, l := range labs {
		if l.IsCritical {
			critical = append(critical, l)
		}
	}

	if len(critical) > 0 {
		result := CriticalLabResult{
			Status:          "CRITICAL_FOUND",
			CriticalResults: critical,
			Action:          "Notify Physician Immediately",
		}
		return result, fmt.Sprintf("[AGENT 3] CRITICAL VALUE ALERT for Patient %s. COBIT DSS06 Alert triggered.", in.PatientID), nil
	}

	// zero labs is still "Normal" with count 0
	result := NormalLabResult{Status: "Normal", Count: len(labs)}
	return result, fmt.Sprintf("[AGENT 3] Lab analysis for %s normal.", in.PatientID), nil
}

type scheduleStaffArgs struct {
	StaffName string `json:"staffName"`
	Shift     string `json:"shift"`
}

type ScheduleStaffResult struct {
	Status   string       `json:"status"`
	Staff    string       `json:"staff"`
	NewShift statex.Shift `json:"newShift"`
}

func (d *Dispatcher) scheduleStaff(args map[string]any) (any, string, error) {
	in, err := decodeArgs[scheduleStaffArgs](args)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(in.StaffName) == "" {
		return nil, "", errors.New("staffName is required")
	}
	if strings.TrimSpace(in.Shift) == "" {
		return nil, "", errors.New("shift is required")
	}

	updated, ok := d.store.SetStaffShift(in.StaffName, statex.Shift(in.Shift))
	if !ok {
		return nil, fmt.Sprintf("[AGENT 4] Scheduling failed. Staff '%s' not found.", in.StaffName), errors.New("Staff member not found")
	}

	result := ScheduleStaffResult{Status: "Scheduled", Staff: updated.Name, NewShift: updated.CurrentShift}
	return result, fmt.Sprintf("[AGENT 4] Resource Allocation: %s assigned to %s.", updated.Name, updated.CurrentShift), nil
}

func decodeArgs[T any](args map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(args)
	if err != nil {
		return out, fmt.Errorf("encode tool args: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("invalid tool args: %w", err)
	}
	return out, nil
}
