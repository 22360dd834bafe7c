// Command defect-fixture runs the fixture procedure literally: it divides by
// zero before printing anything, so the process dies with a runtime panic.
package main

import (
	"os"

	"github.com/sunfmin/go-defect-fixture/pkg/fixture"
	"github.com/sunfmin/go-defect-fixture/pkg/logger"
)

// Version is set during build
var Version = "dev"

func main() {
	logger.Debug("Starting defect fixture", "version", Version, "mode", fixture.Literal)

	if err := fixture.Run(os.Stdout, fixture.Literal); err != nil {
		logger.Error("Fixture failed", "error", err)
		os.Exit(1)
	}
}
