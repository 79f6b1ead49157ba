//go:build !debug

package debug

// Debug reports whether the binary was built with the "debug" tag.
const Debug = false
