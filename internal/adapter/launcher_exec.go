package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
)

// waitDelay bounds how long Open waits for the opener's output pipes after
// the process was killed on cancellation.
const waitDelay = time.Second

type execLauncher struct {
	command string
	args    []string
	timeout time.Duration

	logger *logger.Logger
}

// NewExecLauncher constructs a [Launcher] that runs
// "<cfg.Command> <cfg.Args...> <uri>" as a one-shot subprocess.
//
// A zero cfg.Timeout leaves the subprocess unbounded; only cancellation of
// the caller's context stops it.
func NewExecLauncher(cfg config.Launcher, logger *logger.Logger) Launcher {
	args := make([]string, len(cfg.Args))
	copy(args, cfg.Args)

	return &execLauncher{
		command: cfg.Command,
		args:    args,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (l *execLauncher) Open(ctx context.Context, uri string) error {
	log := logger.FromContext(ctx)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	args := append(append(make([]string, 0, len(l.args)+1), l.args...), uri)
	cmd := exec.CommandContext(ctx, l.command, args...)
	cmd.WaitDelay = waitDelay

	started := time.Now()
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))

	if err != nil {
		log.Err(err).
			Str("func", "execLauncher.Open").
			Str("command", l.command).
			Str("output", output).
			Dur("elapsed", time.Since(started)).
			Msg("launcher invocation failed")

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && l.timeout > 0 {
			return fmt.Errorf("%w after %s: %w", ErrLaunchTimedOut, l.timeout, err)
		}
		if output != "" {
			return fmt.Errorf("%w: %s: %w: %s", ErrLaunchFailed, l.command, err, output)
		}
		return fmt.Errorf("%w: %s: %w", ErrLaunchFailed, l.command, err)
	}

	log.Debug().
		Str("func", "execLauncher.Open").
		Str("command", l.command).
		Dur("elapsed", time.Since(started)).
		Msg("launcher accepted uri")

	return nil
}
