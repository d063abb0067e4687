package ansisenor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"
)

// ColorEnv is merged into every child's environment so that programs
// honoring CLICOLOR_FORCE or FORCE_COLOR keep emitting color despite
// writing to a pipe.
var ColorEnv = map[string]string{
	"CLICOLOR_FORCE": "1",
	"FORCE_COLOR":    "1",
}

// Command describes a child process invocation.
type Command struct {
	// Args is the program followed by its arguments.
	Args []string

	// Env entries are merged over the inherited environment, after
	// ColorEnv.
	Env map[string]string

	// Stdin is handed to the child directly so interactive prompts still
	// work; defaults to os.Stdin.
	Stdin io.Reader

	// Stdout and Stderr receive the live echo of the child's output.
	// They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of a completed (or interrupted) run.
type Result struct {
	// Output is the sealed capture of the child's combined output.
	// Bytes within one stream are in emission order; interleaving
	// between stdout and stderr is best-effort.
	Output []byte

	// ExitCode is the child's exit code. A child killed by a signal is
	// reported as 128+signal where the platform supports it.
	ExitCode int

	// Duration is the wall-clock time from spawn to exit.
	Duration time.Duration
}

// SpawnError reports that the child could not be started at all.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// CaptureError reports a failure while draining a pipe. The run still
// produces a Result holding whatever was captured before the failure.
type CaptureError struct {
	Stream string
	Err    error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capturing %s: %v", e.Stream, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Run spawns the command and tees its output to the live writers and into
// a capture buffer, returning once the child has exited and both pipes are
// drained. SIGINT and SIGTERM received while the child runs are forwarded
// to it; the captured prefix is still sealed and returned.
//
// A *SpawnError is returned with a nil Result. A *CaptureError is returned
// alongside a usable partial Result. A nonzero child exit is not an error;
// it is reported in Result.ExitCode.
func Run(ctx context.Context, command Command) (*Result, error) {
	if len(command.Args) == 0 {
		return nil, &SpawnError{Err: errors.New("no command specified")}
	}

	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...)
	cmd.Env = mergeEnv(os.Environ(), ColorEnv, command.Env)
	cmd.Stdin = command.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	echoOut := command.Stdout
	if echoOut == nil {
		echoOut = os.Stdout
	}
	echoErr := command.Stderr
	if echoErr == nil {
		echoErr = os.Stderr
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Program: command.Args[0], Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &SpawnError{Program: command.Args[0], Err: err}
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Program: command.Args[0], Err: err}
	}

	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()
	defer func() {
		signal.Stop(sigs)
		close(done)
	}()

	// Both pipes must be drained concurrently: a child blocked writing
	// to a full stderr pipe while we wait on stdout (or vice versa)
	// would deadlock.
	var capture Buffer
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := tee(stdout, echoOut, &capture); err != nil {
			errs <- &CaptureError{Stream: "stdout", Err: err}
		}
	}()
	go func() {
		defer wg.Done()
		if err := tee(stderr, echoErr, &capture); err != nil {
			errs <- &CaptureError{Stream: "stderr", Err: err}
		}
	}()
	wg.Wait()

	waitErr := cmd.Wait()

	result := &Result{
		Output:   capture.Seal(),
		Duration: time.Since(start),
		ExitCode: exitStatus(cmd.ProcessState),
	}

	var runErr error
	select {
	case runErr = <-errs:
	default:
	}
	if waitErr != nil && runErr == nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			runErr = &CaptureError{Stream: "wait", Err: waitErr}
		}
	}
	return result, runErr
}

// tee copies src to the live echo and the capture buffer, chunk by chunk,
// preserving arrival order. It keeps draining after an echo or capture
// failure so the child never blocks on a full pipe, and reports the first
// failure once the stream ends.
func tee(src io.Reader, echo io.Writer, capture *Buffer) error {
	var firstErr error
	buf := make([]byte, 32*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if firstErr == nil {
				if _, werr := echo.Write(buf[:n]); werr != nil {
					firstErr = werr
				}
			}
			if aerr := capture.Append(buf[:n]); aerr != nil && firstErr == nil {
				firstErr = aerr
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && firstErr == nil {
				firstErr = err
			}
			return firstErr
		}
	}
}

// mergeEnv layers override maps onto an inherited environment. Later
// entries win, per os/exec. Override keys are appended in sorted order so
// the resulting environment is deterministic.
func mergeEnv(base []string, overrides ...map[string]string) []string {
	env := append([]string(nil), base...)
	for _, m := range overrides {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			env = append(env, k+"="+m[k])
		}
	}
	return env
}
