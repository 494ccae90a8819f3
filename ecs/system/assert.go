package system

import "fmt"

// assertf panics on a broken invariant in builds tagged debug and is a
// no-op otherwise.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("system: invariant violated: "+format, args...))
	}
}
