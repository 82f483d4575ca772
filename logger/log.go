package logger

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var G = GetLogger

type loggerKey struct{}

// WithLogger returns a new context with the provided logger. Use in
// combination with logger.WithField(s) for great effect.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the current logger from the context. If no logger is
// available, the default logger is returned.
func GetLogger(ctx context.Context) logrus.FieldLogger {
	logger := ctx.Value(loggerKey{})

	if logger == nil {
		return logrus.StandardLogger()
	}

	return logger.(logrus.FieldLogger)
}

func WithField(ctx context.Context, key string, value interface{}) context.Context {
	return WithLogger(ctx, GetLogger(ctx).WithField(key, value))
}

func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	return WithLogger(ctx, GetLogger(ctx).WithFields(fields))
}

// Field names shared by every component so log lines can be joined across them.
const (
	ExecutorIDField         = "executorID"
	FunctionExecutorIDField = "functionExecutorID"
	TaskIDField             = "taskID"
	ClockField              = "clock"
)

func WithExecutor(ctx context.Context, executorID string) context.Context {
	return WithField(ctx, ExecutorIDField, executorID)
}

func WithFunctionExecutor(ctx context.Context, feID string) context.Context {
	return WithField(ctx, FunctionExecutorIDField, feID)
}

// WithTask tags the context with the task and the function executor it was allocated to.
func WithTask(ctx context.Context, taskID, feID string) context.Context {
	return WithFields(ctx, map[string]interface{}{
		TaskIDField:             taskID,
		FunctionExecutorIDField: feID,
	})
}

// Options configure the process-wide logrus logger.
type Options struct {
	Level string
	JSON  bool
}

// Configure applies the options to the standard logger and returns it.
func Configure(opts Options) (*logrus.Logger, error) {
	l := logrus.StandardLogger()
	l.SetOutput(os.Stderr)
	if opts.Level != "" {
		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
		l.SetLevel(level)
	}
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
