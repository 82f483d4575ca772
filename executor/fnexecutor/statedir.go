package fnexecutor

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const stateDirLockFile = ".lock"

// stateDirLock is an exclusive flock on the state directory, so two agents
// never manage the same spec files.
type stateDirLock struct {
	file *os.File
}

func lockStateDir(dir string, timeout time.Duration) (*stateDirLock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "cannot create state directory")
	}
	f, err := os.OpenFile(filepath.Join(dir, stateDirLockFile), os.O_RDONLY|os.O_CREATE, 0400)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open state directory lock")
	}

	start := time.Now()
	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return &stateDirLock{file: f}, nil
		}
		if err != unix.EWOULDBLOCK || time.Since(start) >= timeout {
			_ = f.Close()
			if err == unix.EWOULDBLOCK {
				err = unix.ETIMEDOUT
			}
			return nil, errors.Wrapf(err, "state directory %s is in use", dir)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (l *stateDirLock) Unlock() error {
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}
