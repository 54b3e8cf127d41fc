//go:build tools

package tools

// Pins the mock generator version used for pkg/*/mocks.
// Run: go run github.com/vektra/mockery/v2 (from the module root).
import (
	_ "github.com/vektra/mockery/v2"
)
