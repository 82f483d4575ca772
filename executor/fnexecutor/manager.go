// Package fnexecutor runs each function executor as a local process.
package fnexecutor

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/executor/reconciler"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	unexpectedExitMetric = "titus.fnexecutor.functionExecutorUnexpectedExit"
	killedMetric         = "titus.fnexecutor.functionExecutorKilled"

	// EnvSpecPath points the process at its description.
	EnvSpecPath           = "FUNCTION_EXECUTOR_SPEC"
	EnvFunctionExecutorID = "FUNCTION_EXECUTOR_ID"
	EnvExecutorID         = "EXECUTOR_ID"

	stateDirLockTimeout = 10 * time.Second
)

type Config struct {
	Command    []string
	StateDir   string
	ExecutorID string
	// StopGrace is how long a process has to exit after SIGTERM before it is killed.
	StopGrace time.Duration
	// ReadyDelay is how long a new process has to stay up to count as started.
	ReadyDelay time.Duration
}

type process struct {
	id       string
	cmd      *exec.Cmd
	specPath string
	exited   chan struct{}
	exitErr  error
	stopping bool
	logs     []io.Closer
}

// ProcessManager starts one process per function executor. The process gets
// its description as a JSON file whose path is in $FUNCTION_EXECUTOR_SPEC.
type ProcessManager struct {
	config  Config
	metrics metrics.Reporter
	dirLock *stateDirLock

	lock      sync.Mutex
	events    reconciler.Events
	processes map[string]*process
}

func NewProcessManager(cfg Config, m metrics.Reporter) (*ProcessManager, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("no function executor command configured")
	}
	dirLock, err := lockStateDir(cfg.StateDir, stateDirLockTimeout)
	if err != nil {
		return nil, err
	}
	return &ProcessManager{
		config:    cfg,
		metrics:   m,
		dirLock:   dirLock,
		processes: make(map[string]*process),
	}, nil
}

// SetEvents must be called before the first Create.
func (pm *ProcessManager) SetEvents(events reconciler.Events) {
	pm.lock.Lock()
	defer pm.lock.Unlock()
	pm.events = events
}

var specMarshaler = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

func (pm *ProcessManager) writeSpec(desc *executorapi.FunctionExecutorDescription) (string, error) {
	data, err := specMarshaler.Marshal(desc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(pm.config.StateDir, desc.GetId()+".json")
	tmp := path + ".tmp"
	if err = ioutil.WriteFile(tmp, data, 0600); err != nil {
		return "", err
	}
	return path, os.Rename(tmp, path)
}

func (pm *ProcessManager) Create(ctx context.Context, desc *executorapi.FunctionExecutorDescription) error {
	id := desc.GetId()
	ctx = logger.WithFunctionExecutor(ctx, id)

	pm.lock.Lock()
	if _, ok := pm.processes[id]; ok {
		pm.lock.Unlock()
		return errors.Errorf("function executor %s already exists", id)
	}
	specPath, err := pm.writeSpec(desc)
	if err != nil {
		pm.lock.Unlock()
		return errors.Wrap(err, "cannot write function executor spec")
	}

	cmd := exec.Command(pm.config.Command[0], pm.config.Command[1:]...) // nolint: gosec
	cmd.Env = append(os.Environ(),
		EnvSpecPath+"="+specPath,
		EnvFunctionExecutorID+"="+id,
		EnvExecutorID+"="+pm.config.ExecutorID,
	)
	cmd.Dir = pm.config.StateDir
	stdout := logger.G(ctx).WithField("stream", "stdout").Writer()
	stderr := logger.G(ctx).WithField("stream", "stderr").Writer()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err = cmd.Start(); err != nil {
		pm.lock.Unlock()
		_ = stdout.Close()
		_ = stderr.Close()
		_ = os.Remove(specPath)
		return errors.Wrap(err, "cannot start function executor")
	}
	p := &process{id: id, cmd: cmd, specPath: specPath, exited: make(chan struct{}), logs: []io.Closer{stdout, stderr}}
	pm.processes[id] = p
	pm.lock.Unlock()

	logger.G(ctx).WithField("pid", cmd.Process.Pid).Info("Started function executor process")
	go pm.monitor(ctx, p)

	timer := time.NewTimer(pm.config.ReadyDelay)
	defer timer.Stop()
	select {
	case <-p.exited:
		pm.forget(p)
		// The process ran, so it is the function's own code that failed.
		return fnerrors.NewPersistentError(errors.Errorf("function executor exited during startup: %v", p.exitErr))
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (pm *ProcessManager) monitor(ctx context.Context, p *process) {
	err := p.cmd.Wait()
	for _, w := range p.logs {
		_ = w.Close()
	}
	pm.lock.Lock()
	p.exitErr = err
	stopping := p.stopping
	events := pm.events
	pm.lock.Unlock()
	close(p.exited)

	if stopping {
		return
	}
	message := "function executor exited"
	if err != nil {
		message = fmt.Sprintf("function executor exited: %v", err)
	}
	logger.G(ctx).WithError(err).Warn("Function executor exited unexpectedly")
	pm.metrics.Counter(unexpectedExitMetric, 1, nil)
	if events != nil {
		events.FunctionExecutorStatusChanged(p.id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNHEALTHY, message)
	}
}

func (pm *ProcessManager) forget(p *process) {
	pm.lock.Lock()
	if pm.processes[p.id] == p {
		delete(pm.processes, p.id)
	}
	pm.lock.Unlock()
	if err := os.Remove(p.specPath); err != nil && !os.IsNotExist(err) {
		logger.G(context.TODO()).WithError(err).Warn("Could not remove function executor spec")
	}
}

// Destroy stops the process with SIGTERM, and kills it once the grace period passed.
func (pm *ProcessManager) Destroy(ctx context.Context, id string) error {
	ctx = logger.WithFunctionExecutor(ctx, id)
	pm.lock.Lock()
	p, ok := pm.processes[id]
	if ok {
		p.stopping = true
	}
	pm.lock.Unlock()
	if !ok {
		return nil
	}
	defer pm.forget(p)

	select {
	case <-p.exited:
		return nil
	default:
	}

	if err := p.cmd.Process.Signal(unix.SIGTERM); err != nil {
		logger.G(ctx).WithError(err).Warn("Could not send SIGTERM to function executor")
	}
	grace := time.NewTimer(pm.config.StopGrace)
	defer grace.Stop()
	select {
	case <-p.exited:
		logger.G(ctx).Info("Function executor stopped")
		return nil
	case <-grace.C:
	case <-ctx.Done():
	}

	logger.G(ctx).Warn("Function executor did not stop in time, killing it")
	pm.metrics.Counter(killedMetric, 1, nil)
	if err := p.cmd.Process.Kill(); err != nil {
		return errors.Wrap(err, "cannot kill function executor")
	}
	select {
	case <-p.exited:
		return nil
	case <-time.After(pm.config.StopGrace):
		return errors.Errorf("function executor %s did not exit after being killed", id)
	}
}

// Close destroys every remaining process and releases the state directory.
func (pm *ProcessManager) Close(ctx context.Context) error {
	pm.lock.Lock()
	ids := make([]string, 0, len(pm.processes))
	for id := range pm.processes {
		ids = append(ids, id)
	}
	pm.lock.Unlock()

	group := fnerrors.NewErrGroupIsh()
	for _, id := range ids {
		id := id
		group.Run(func() error {
			return pm.Destroy(ctx, id)
		})
	}
	err := group.Wait(ctx)
	if unlockErr := pm.dirLock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	return err
}
