// Package integration runs the built nextrip binary against a fake provider.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// nextripBin is the path to the built nextrip binary.
	nextripBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv is an isolated environment with its own config directory.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	BaseURL   string
}

// NewTestEnv creates an environment whose runs talk to baseURL.
func NewTestEnv(t *testing.T, baseURL string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build nextrip: %v", buildErr)
	}
	if nextripBin == "" {
		t.Fatal("nextrip binary not built (nextripBin is empty)")
	}

	return &TestEnv{
		t:         t,
		ConfigDir: t.TempDir(),
		BaseURL:   baseURL,
	}
}

// CmdResult holds the result of a nextrip command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunNextrip executes the binary with the given arguments.
func (e *TestEnv) RunNextrip(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--base-url", e.BaseURL}, args...)
	cmd := exec.Command(nextripBin, allArgs...)
	cmd.Env = filteredEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run nextrip: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// filteredEnv drops NEXTRIP_* variables so the host cannot leak settings
// into a run.
func filteredEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NEXTRIP_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}
