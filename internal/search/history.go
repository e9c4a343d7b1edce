package search

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
)

// commandRunner runs name with args and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, &commandError{err: err, stderr: strings.TrimSpace(stderr.String())}
	}
	return out, err
}

type commandError struct {
	err    error
	stderr string
}

func (e *commandError) Error() string { return e.err.Error() + ": " + e.stderr }
func (e *commandError) Unwrap() error { return e.err }

// HistorySearcher queries zoxide's directory database.
type HistorySearcher struct {
	binary string
	run    commandRunner
}

// NewHistorySearcher uses the zoxide executable named binary.
func NewHistorySearcher(binary string) *HistorySearcher {
	if binary == "" {
		binary = "zoxide"
	}
	return &HistorySearcher{binary: binary, run: runCommand}
}

// Search returns up to limit absolute directories for query, best first.
func (h *HistorySearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	args := append([]string{"query", "--list", "--"}, strings.Fields(query)...)
	out, err := h.run(ctx, h.binary, args...)
	if err != nil {
		// zoxide exits 1 when nothing matches.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && len(bytes.TrimSpace(out)) == 0 {
			return nil, nil
		}
		return nil, apperrors.New(apperrors.ExternalProcessFailure, "zoxide query", "", err)
	}
	return parseLines(out, limit), nil
}

func parseLines(out []byte, limit int) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	return lines
}
