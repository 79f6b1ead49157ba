// Package debug holds the debug build flag and the assertion helper shared by
// the dimtypes packages.
package debug

// Assert panics if the condition is false. Unless the "debug" build tag is
// set, Assert compiles to a no-op.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
