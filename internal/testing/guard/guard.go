// Package guard puts the binaries into test mode. Import it for side effects
// from tests that build the router or services.
package guard

import "os"

func init() {
	if _, ok := os.LookupEnv("SUPPLYLINE_TEST_MODE"); !ok {
		_ = os.Setenv("SUPPLYLINE_TEST_MODE", "1")
	}
}
