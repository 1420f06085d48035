package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultTerminateGrace is how long Close waits after SIGTERM before killing the simulator
const DefaultTerminateGrace = 2 * time.Second

// Runner launches the simulator for a single circuit file
type Runner struct {
	command []string
	grace   time.Duration
	logger  *zap.Logger
}

// NewRunner creates a new Runner. command is the simulator program followed by
// its mode arguments; the circuit path is appended on each Start.
func NewRunner(command []string, logger *zap.Logger) *Runner {
	return &Runner{command: command, grace: DefaultTerminateGrace, logger: logger}
}

// Process is a running simulator whose trace is read from Stdout.
// Close must be called on every path once the trace is no longer needed.
type Process struct {
	Stdout io.Reader

	cmd    *exec.Cmd
	grace  time.Duration
	logger *zap.Logger
	closed bool
}

// Start launches the simulator against circuitPath with stdin bound to the
// null device and stdout connected to a pipe.
func (r *Runner) Start(ctx context.Context, circuitPath string) (*Process, error) {
	if len(r.command) == 0 {
		return nil, errors.New("no simulator command configured")
	}

	args := append(append([]string{}, r.command[1:]...), circuitPath)
	cmd := exec.CommandContext(ctx, r.command[0], args...)
	// Stdin stays nil so it reads from the null device and the simulator never waits on input
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("simulator stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start simulator for %s: %w", circuitPath, err)
	}

	r.logger.Debug("simulator started",
		zap.String("circuit", circuitPath),
		zap.Int("pid", cmd.Process.Pid),
	)

	return &Process{Stdout: stdout, cmd: cmd, grace: r.grace, logger: r.logger}, nil
}

// Pid returns the simulator's process id
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Close terminates the simulator and reaps it. A simulator still running after
// the grace period following SIGTERM is killed. It is safe to call more than once.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		// Platforms without SIGTERM only support Kill
		if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("terminate simulator %d: %w", p.Pid(), err)
		}
	}

	done := make(chan error, 1)
	go func() { done <- p.cmd.Wait() }()

	var err error
	select {
	case err = <-done:
	case <-time.After(p.grace):
		p.logger.Debug("simulator ignored SIGTERM, killing", zap.Int("pid", p.Pid()))
		if kerr := p.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			return fmt.Errorf("kill simulator %d: %w", p.Pid(), kerr)
		}
		err = <-done
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("wait for simulator %d: %w", p.Pid(), err)
	}

	p.logger.Debug("simulator terminated",
		zap.Int("pid", p.Pid()),
		zap.String("state", p.cmd.ProcessState.String()),
	)
	return nil
}
