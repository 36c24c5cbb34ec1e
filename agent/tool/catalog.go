package tool

import (
	"github.com/cloudwego/eino/schema"
)

// Name is the closed set of functions advertised to the model backend.
// Adding one requires a descriptor in Infos, a variant in the dispatcher
// table, and a mention in the orchestration prompt.
type Name string

const (
	NameGetPatientData        Name = "get_patient_data"
	NameCreateBillingProposal Name = "create_billing_proposal"
	NameCheckMedicationStock  Name = "check_medication_stock"
	NameAnalyzeCriticalLab    Name = "analyze_critical_lab"
	NameScheduleStaff         Name = "schedule_staff"
)

// Infos returns the tool descriptors in their fixed advertised order. All
// parameters in this domain are strings.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: string(NameGetPatientData),
			Desc: "Agent 1: Retrieve medical records for a specific patient by name or ID.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"identifier": {Type: schema.String, Desc: "Patient Name or ID (e.g., 'P001' or 'Budi')", Required: true},
			}),
		},
		{
			Name: string(NameCreateBillingProposal),
			Desc: "Agent 1 (iDRG): Generate a billing proposal based on diagnosis. Returns ICD-10 code and estimated cost.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"patientId":    {Type: schema.String, Desc: "The ID of the patient", Required: true},
				"diagnosis":    {Type: schema.String, Desc: "The medical diagnosis", Required: true},
				"intervention": {Type: schema.String, Desc: "Treatment or intervention provided"},
			}),
		},
		{
			Name: string(NameCheckMedicationStock),
			Desc: "Agent 2: Check current stock levels of a specific medication.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"medicationName": {Type: schema.String, Desc: "Name of the drug", Required: true},
			}),
		},
		{
			Name: string(NameAnalyzeCriticalLab),
			Desc: "Agent 3: Analyze a patient's latest lab results for critical values and flag them.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"patientId": {Type: schema.String, Desc: "Patient ID", Required: true},
			}),
		},
		{
			Name: string(NameScheduleStaff),
			Desc: "Agent 4: Assign a staff member to a specific shift to optimize resources.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"staffName": {Type: schema.String, Desc: "Name of the staff member", Required: true},
				"shift":     {Type: schema.String, Desc: "Target shift: Morning, Afternoon, Night", Required: true},
			}),
		},
	}
}
