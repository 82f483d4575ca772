//go:build !linux
// +build !linux

package logsutil

// EnableJournald is a no-op off linux.
func EnableJournald(onlyUnderSystemd bool) bool {
	return false
}
