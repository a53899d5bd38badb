//go:build release
// +build release

package debug

const Enabled = false

func Assert(info string, fn func() bool) {}
