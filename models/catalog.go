package models

// Static code/label catalogs for document classification. The label-to-code
// inverses are built once at process start and are read-only afterwards.

// DocumentTypeLabels maps a three-letter document type code to its display label.
var DocumentTypeLabels = map[string]string{
	"TBL": "Technical Bulletin",
	"SAC": "Safety Circular",
	"MMN": "Maintenance Manual",
	"OPR": "Operating Procedure",
	"INR": "Incident Report",
	"TRM": "Training Manual",
	"POL": "Policy Document",
	"INP": "Inspection Report",
	"ESP": "Equipment Specification",
	"EMP": "Emergency Protocol",
	"SOP": "Standard Operating Procedure",
	"QAR": "Quality Assurance Report",
	"AUD": "Compliance Audit",
	"RAS": "Risk Assessment",
	"WIN": "Work Instruction",
	"COR": "Correspondence",
	"REP": "Report",
	"FOR": "Form",
	"NOT": "Notice",
	"AGD": "Agenda",
	"MIN": "Minutes",
	"PRO": "Proposal",
	"CON": "Contract",
}

// DepartmentLabels maps a department code to its display label.
var DepartmentLabels = map[string]string{
	"ENG": "Engineering Department",
	"OPS": "Operations Department",
	"RST": "Rolling Stock Department",
	"SIG": "Signal & Telecommunication",
	"ELE": "Electrical Department",
	"CIV": "Civil Engineering",
	"SAF": "Safety & Security",
	"HR":  "Human Resources",
	"FIN": "Finance & Accounts",
	"PMO": "Project Management Office",
	"IT":  "Information Technology",
	"CR":  "Customer Relations",
	"PRC": "Procurement Department",
	"LEG": "Legal & Compliance",
	"MED": "Medical Department",
	"ENV": "Environment Department",
	"QC":  "Quality Control",
	"ADM": "Administration",
}

var (
	documentTypeCodes = invert(DocumentTypeLabels)
	departmentCodes   = invert(DepartmentLabels)
)

func invert(m map[string]string) map[string]string {
	inv := make(map[string]string, len(m))
	for code, label := range m {
		inv[label] = code
	}
	return inv
}

// DocumentTypeCode resolves a display label back to its code.
func DocumentTypeCode(label string) (string, bool) {
	code, ok := documentTypeCodes[label]
	return code, ok
}

// DepartmentCode resolves a display label back to its code.
func DepartmentCode(label string) (string, bool) {
	code, ok := departmentCodes[label]
	return code, ok
}

// IsDocumentTypeCode reports whether code is a known document type code.
func IsDocumentTypeCode(code string) bool {
	_, ok := DocumentTypeLabels[code]
	return ok
}

// IsDepartmentCode reports whether code is a known department code.
func IsDepartmentCode(code string) bool {
	_, ok := DepartmentLabels[code]
	return ok
}
