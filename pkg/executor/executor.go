package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs external programs.
type Executor interface {
	// Run executes name with args and waits for it to finish. A non-zero exit
	// is reported as an *ExitError; the Result is populated either way.
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExitError reports a command that started but exited with a non-zero code.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Command, e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// IsNotFound reports whether err means the binary could not be located.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// CommandExecutor runs commands through os/exec.
type CommandExecutor struct {
	logger *zap.Logger
}

// NewCommandExecutor creates an executor that logs every invocation at debug level.
// A nil logger disables logging.
func NewCommandExecutor(logger *zap.Logger) *CommandExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CommandExecutor{logger: logger}
}

// Run implements Executor.
func (ce *CommandExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	ce.logger.Debug("running command", zap.String("command", name), zap.Strings("args", args))

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			ce.logger.Debug("command failed",
				zap.String("command", commandLine),
				zap.Int("exit_code", result.ExitCode),
				zap.Duration("elapsed", elapsed))

			return result, &ExitError{Command: commandLine, Code: result.ExitCode, Stderr: result.Stderr}
		}

		result.ExitCode = -1
		ce.logger.Debug("command did not start", zap.String("command", commandLine), zap.Error(err))

		return result, fmt.Errorf("failed to execute command %s: %w", name, err)
	}

	ce.logger.Debug("command finished",
		zap.String("command", commandLine),
		zap.Int("exit_code", 0),
		zap.Duration("elapsed", elapsed))

	return result, nil
}
