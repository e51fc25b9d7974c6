package python

import (
	"context"
	"sync"
)

// Operation names recorded by the mock, one per Toolchain method.
const (
	OpVersion = "version"
	OpCreate  = "create-env"
	OpPip     = "upgrade-pip"
	OpInstall = "install"
	OpManage  = "manage"
)

// Call records a single Toolchain invocation
type Call struct {
	Op   string
	Args []string
}

// MockToolchain implements Toolchain for testing, recording every call and
// returning injected errors per operation
type MockToolchain struct {
	mu    sync.Mutex
	calls []Call

	// VersionOutput is returned by Version when no error is injected
	VersionOutput string

	errs map[string]error
}

// NewMockToolchain creates a new MockToolchain
func NewMockToolchain() *MockToolchain {
	return &MockToolchain{
		VersionOutput: "Python 3.12.4",
		errs:          make(map[string]error),
	}
}

// FailWith makes the given operation return err
func (m *MockToolchain) FailWith(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[op] = err
}

// FailManage makes Manage return err only for the given subcommand
// (e.g. "migrate"), leaving other manage.py invocations untouched
func (m *MockToolchain) FailManage(subcommand string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[OpManage+":"+subcommand] = err
}

// Calls returns every recorded invocation in order
func (m *MockToolchain) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call{}, m.calls...)
}

// Ops returns just the operation names of every recorded invocation
func (m *MockToolchain) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := make([]string, len(m.calls))
	for i, call := range m.calls {
		ops[i] = call.Op
	}
	return ops
}

func (m *MockToolchain) record(op string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Op: op, Args: args})
	return m.errs[op]
}

func (m *MockToolchain) Version(ctx context.Context, python string) (string, error) {
	if err := m.record(OpVersion, python); err != nil {
		return "", err
	}
	return m.VersionOutput, nil
}

func (m *MockToolchain) CreateEnv(ctx context.Context, python, dir string) error {
	return m.record(OpCreate, python, dir)
}

func (m *MockToolchain) UpgradePip(ctx context.Context, envPython string) error {
	return m.record(OpPip, envPython)
}

func (m *MockToolchain) InstallRequirements(ctx context.Context, envPython, manifestPath string) error {
	return m.record(OpInstall, envPython, manifestPath)
}

func (m *MockToolchain) Manage(ctx context.Context, envPython, managePath string, args ...string) error {
	recorded := append([]string{envPython, managePath}, args...)
	if err := m.record(OpManage, recorded...); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(args) > 0 {
		return m.errs[OpManage+":"+args[0]]
	}
	return nil
}
