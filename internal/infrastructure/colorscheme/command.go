package colorscheme

import (
	"context"
	"os/exec"
	"time"
)

// detectTimeout bounds every detector call so a wedged helper cannot stall resolution.
const detectTimeout = 2 * time.Second

// commandRunner runs a program and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// lookPath reports whether a program is on PATH.
type lookPath func(name string) (string, error)

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func runWithTimeout(run commandRunner, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()
	return run(ctx, name, args...)
}
