package fixture

import "fmt"

// Mode selects how the division step treats its divisor
type Mode int

const (
	// Literal divides by zero and lets the runtime abort the process
	Literal Mode = iota
	// Demonstration stubs the divisor so the later steps are reachable
	Demonstration
)

// demonstrationDivisor replaces the zero divisor in Demonstration mode
const demonstrationDivisor = 1

func (m Mode) String() string {
	switch m {
	case Literal:
		return "literal"
	case Demonstration:
		return "demonstration"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
