//go:build !windows

package util

// LaunchedFromDesktop reports whether the process was started by a desktop
// shell rather than from a terminal. Outside Windows a desktop launcher always
// provides its own terminal, so there is nothing to detect.
func LaunchedFromDesktop() bool {
	return false
}
