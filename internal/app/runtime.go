package app

import "os"

const testModeEnv = "SUPPLYLINE_TEST_MODE"

// InTestMode reports whether the binaries should skip runtime side effects
// such as dialing the store or binding a port.
func InTestMode() bool {
	switch os.Getenv(testModeEnv) {
	case "1", "true":
		return true
	default:
		return false
	}
}
