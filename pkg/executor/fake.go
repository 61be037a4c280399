package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Response is a canned outcome returned by FakeExecutor.
type Response struct {
	Result Result
	Err    error
}

// FakeExecutor records invocations and replays canned responses keyed by the
// full command line. Unknown commands behave like a missing binary.
type FakeExecutor struct {
	Responses map[string]Response
	Calls     [][]string
}

// NewFakeExecutor creates an empty FakeExecutor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Responses: map[string]Response{}}
}

// On registers the response for a command line such as "k3d cluster list --no-headers".
func (f *FakeExecutor) On(commandLine string, stdout string, err error) *FakeExecutor {
	f.Responses[commandLine] = Response{Result: Result{Stdout: stdout}, Err: err}

	return f
}

// Fail registers a non-zero exit with the given stderr for a command line.
func (f *FakeExecutor) Fail(commandLine string, code int, stderr string) *FakeExecutor {
	f.Responses[commandLine] = Response{
		Result: Result{Stderr: stderr, ExitCode: code},
		Err:    &ExitError{Command: commandLine, Code: code, Stderr: stderr},
	}

	return f
}

// Run implements Executor.
func (f *FakeExecutor) Run(_ context.Context, name string, args ...string) (Result, error) {
	call := append([]string{name}, args...)
	f.Calls = append(f.Calls, call)

	resp, ok := f.Responses[strings.Join(call, " ")]
	if !ok {
		return Result{ExitCode: -1}, fmt.Errorf("failed to execute command %s: %w", name, exec.ErrNotFound)
	}

	return resp.Result, resp.Err
}
