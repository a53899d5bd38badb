//go:build !release
// +build !release

package debug

// Enabled reports if assertions are compiled in.
const Enabled = true

// Assert panics with info if fn returns false. It compiles to nothing when
// built with the release tag.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}
