//go:build linux
// +build linux

package logsutil

import (
	"github.com/coreos/go-systemd/util"
	log "github.com/sirupsen/logrus"
	"github.com/wercker/journalhook"
)

// EnableJournald routes log output to journald. With onlyUnderSystemd set the
// hook is only installed when the process runs as a systemd unit.
func EnableJournald(onlyUnderSystemd bool) bool {
	if !onlyUnderSystemd {
		journalhook.Enable()
		return true
	}
	runningFromSystemService, err := util.RunningFromSystemService()
	if err != nil {
		log.WithError(err).Error("Error checking if running under systemd unit")
		return false
	}
	if runningFromSystemService {
		journalhook.Enable()
	}
	return runningFromSystemService
}
