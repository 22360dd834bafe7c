package types

// Severity ranks a defect the way review tooling reports it
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// DefectKind names one of the defect patterns planted in the fixture
type DefectKind string

const (
	// UninitializedReadRisk: a declared but unassigned value is in scope
	UninitializedReadRisk DefectKind = "UninitializedReadRisk"
	// DivisionByZeroFault: integer division by a zero divisor, aborts the process
	DivisionByZeroFault DefectKind = "DivisionByZeroFault"
	// DeadStoreWarning: a value is assigned and never read
	DeadStoreWarning DefectKind = "DeadStoreWarning"
	// MisleadingControlFlowWarning: an "infinite" guard whose body runs once
	MisleadingControlFlowWarning DefectKind = "MisleadingControlFlowWarning"
	// MagicNumberInfo: an unnamed literal bounds a loop
	MagicNumberInfo DefectKind = "MagicNumberInfo"
)

// Defect describes a planted defect and where it lives
type Defect struct {
	Kind       DefectKind `json:"kind"`                 // Defect pattern
	Severity   Severity   `json:"severity"`             // Reported severity
	Fatal      bool       `json:"fatal"`                // Whether it aborts execution
	Step       string     `json:"step"`                 // Procedure step carrying it
	Identifier string     `json:"identifier,omitempty"` // Source identifier involved
	Summary    string     `json:"summary"`              // Human-readable description
}
