package ufunc

import (
	"testing"

	"go.uber.org/goleak"
)

// The appliers are synchronous; none of them may leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
