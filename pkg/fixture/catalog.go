package fixture

import "github.com/sunfmin/go-defect-fixture/pkg/types"

// Catalog lists the planted defects in step order, for comparing against an
// analyser's findings.
func Catalog() []types.Defect {
	return []types.Defect{
		{
			Kind:       types.UninitializedReadRisk,
			Severity:   types.SeverityWarning,
			Step:       "declare-uninitialized",
			Identifier: "uninitializedValue",
			Summary:    "variable declared but never initialized",
		},
		{
			Kind:       types.DivisionByZeroFault,
			Severity:   types.SeverityCritical,
			Fatal:      true,
			Step:       "divide-by-zero",
			Identifier: "zeroDivisor",
			Summary:    "integer division by a divisor fixed at zero",
		},
		{
			Kind:     types.MagicNumberInfo,
			Severity: types.SeverityInfo,
			Step:     "counted-print-loop",
			Summary:  "loop bound 42 used as a bare literal",
		},
		{
			Kind:       types.DeadStoreWarning,
			Severity:   types.SeverityWarning,
			Step:       "dead-store",
			Identifier: "unusedValue",
			Summary:    "value assigned and never read",
		},
		{
			Kind:     types.MisleadingControlFlowWarning,
			Severity: types.SeverityInfo,
			Step:     "misleading-loop",
			Summary:  "always-true guard whose body runs exactly once",
		},
	}
}
