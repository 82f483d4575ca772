package taskrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/outcome"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/pkg/errors"
)

// Environment variables a task command is started with.
const (
	EnvExecutorID         = "EXECUTOR_ID"
	EnvFunctionExecutorID = "FUNCTION_EXECUTOR_ID"
	EnvTaskID             = "TASK_ID"
	EnvNamespace          = "NAMESPACE"
	EnvGraphName          = "GRAPH_NAME"
	EnvGraphVersion       = "GRAPH_VERSION"
	EnvFunctionName       = "FUNCTION_NAME"
	EnvGraphInvocationID  = "GRAPH_INVOCATION_ID"
	EnvInputKey           = "INPUT_KEY"
	EnvReducerOutputKey   = "REDUCER_OUTPUT_KEY"
	// EnvOutputPath is where the command may write its output.
	EnvOutputPath = "OUTPUT_PATH"
)

// CommandInvoker runs each task as a local command. Exit status 0 is success;
// a file written to $OUTPUT_PATH becomes the task's only output.
type CommandInvoker struct {
	Command    []string
	ExecutorID string
	// WorkDir holds per-task output files. Defaults to the OS temp dir.
	WorkDir string
}

func (c *CommandInvoker) env(fe *executorapi.FunctionExecutorDescription, task *executorapi.Task, outputPath string) []string {
	vars := map[string]string{
		EnvExecutorID:         c.ExecutorID,
		EnvFunctionExecutorID: fe.GetId(),
		EnvTaskID:             task.GetId(),
		EnvNamespace:          task.GetNamespace(),
		EnvGraphName:          task.GetGraphName(),
		EnvGraphVersion:       task.GetGraphVersion(),
		EnvFunctionName:       task.GetFunctionName(),
		EnvGraphInvocationID:  task.GetGraphInvocationId(),
		EnvInputKey:           task.GetInputKey(),
		EnvReducerOutputKey:   task.GetReducerOutputKey(),
		EnvOutputPath:         outputPath,
	}
	env := os.Environ()
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	return env
}

func (c *CommandInvoker) Invoke(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error) {
	if len(c.Command) == 0 {
		return nil, errors.New("no task command configured")
	}

	dir, err := ioutil.TempDir(c.WorkDir, "task-")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create task directory")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.G(ctx).WithError(err).Warn("Could not remove task directory")
		}
	}()
	outputPath := filepath.Join(dir, "output")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...) // nolint: gosec
	cmd.Env = c.env(fe, task, outputPath)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}
	runErr := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if runErr != nil {
		if ctx.Err() != nil {
			return result, errors.Wrap(ctx.Err(), "task did not finish in time")
		}
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return result, errors.Wrap(runErr, "cannot start task command")
		}
		logger.G(ctx).WithField("exitCode", exitErr.ExitCode()).Info("Task command failed")
		result.Outcome = executorapi.TaskOutcome_TASK_OUTCOME_FAILURE
	}

	data, err := ioutil.ReadFile(outputPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return result, errors.Wrap(err, "cannot read task output")
	default:
		contentType := outcome.StdContentType
		if json.Valid(data) {
			contentType = "application/json"
		}
		result.Outputs = append(result.Outputs, outcome.Output{Bytes: data, ContentType: contentType})
	}
	return result, nil
}
