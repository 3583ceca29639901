package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/tanq16/getr/internal/utils"
)

// Manager prints the lines of a single download. Informational lines go to
// Stdout and are dropped in quiet mode; errors always go to Stderr.
type Manager struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Verbosity utils.Verbosity
	mutex     sync.Mutex
	startTime time.Time
}

func NewManager(verbosity utils.Verbosity) *Manager {
	return &Manager{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Verbosity: verbosity,
		startTime: time.Now(),
	}
}

func (m *Manager) quiet() bool {
	return m.Verbosity == utils.Quiet
}

// StreamLine prints one informational line, such as the response status.
func (m *Manager) StreamLine(line string) {
	if m.quiet() {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	fmt.Fprintln(m.Stdout, FInfo(line))
}

func (m *Manager) Complete(message string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.quiet() {
		return
	}
	elapsed := time.Since(m.startTime).Round(time.Millisecond)
	fmt.Fprintf(m.Stdout, "%s %s %s\n", FSuccess(StyleSymbols["pass"]), FSuccess(message), FDebug(elapsed.String()))
}

func (m *Manager) ReportError(message string, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	fmt.Fprintf(m.Stderr, "%s %s\n", FError(StyleSymbols["fail"]), FError(fmt.Sprintf("%s: %v", message, err)))
}
