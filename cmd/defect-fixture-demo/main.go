// Command defect-fixture-demo runs the fixture with the zero divisor stubbed
// out, so the print loops are reachable and the process exits 0.
package main

import (
	"os"

	"github.com/sunfmin/go-defect-fixture/pkg/fixture"
	"github.com/sunfmin/go-defect-fixture/pkg/logger"
)

// Version is set during build
var Version = "dev"

func main() {
	logger.Debug("Starting defect fixture", "version", Version, "mode", fixture.Demonstration)

	if err := fixture.Run(os.Stdout, fixture.Demonstration); err != nil {
		logger.Error("Fixture failed", "error", err)
		os.Exit(1)
	}
}
