package compiler_test

import (
	"os"
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine started by CompileUnits's worker pool
// outlives the test binary, the same guard nilaway_test.go runs for
// its own analysis passes.
func TestMain(m *testing.M) {
	os.Exit(goleak.VerifyTestMain(m))
}
