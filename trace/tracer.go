// Package trace provides execution tracing for the member-operations
// core, adapted from the teacher's verb-call tracer (trace/tracer.go):
// same Init/IsEnabled/global-tracer/filepath.Match filter idiom, but
// retargeted from "verb calls" to "member operations" — op name, base
// kind, key, and a call-depth counter. The depth counter matters here in
// a way it didn't for verb tracing: a re-entrant member op triggered from
// inside an object's offsetGet/__get override (spec.md §5's re-entrancy
// hazard) needs to be visibly nested under the op that triggered it.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tracer provides execution tracing for member operations.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
	depth   int
}

// Global tracer instance.
var globalTracer *Tracer

// Init initializes the global tracer.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled.
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if an op name matches any of the filter patterns.
func (t *Tracer) matchesFilter(op string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, op); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) indent() string {
	return strings.Repeat("  ", t.depth)
}

// Enter logs entry into a member operation (Elem, SetProp, IncDecElem,
// …) and bumps the re-entrancy depth counter; pair with a deferred Exit.
func (t *Tracer) Enter(op string, baseKind string, key string) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] %sENTER %s base=%s key=%s\n", t.indent(), op, baseKind, key)
	t.depth++
}

// Exit logs the result of a member operation and decrements the depth
// counter that Enter bumped.
func (t *Tracer) Exit(op string, result string) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth > 0 {
		t.depth--
	}
	fmt.Fprintf(t.writer, "[TRACE] %sEXIT  %s => %s\n", t.indent(), op, result)
}

// Diagnostic logs a non-fatal notice/warning raised mid-operation.
func (t *Tracer) Diagnostic(op string, severity string, text string) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] %s  %s: %s\n", t.indent(), strings.ToUpper(severity), text)
}

// Global convenience functions, mirroring the teacher's package-level
// wrappers around the singleton tracer.

func Enter(op, baseKind, key string) {
	if globalTracer != nil {
		globalTracer.Enter(op, baseKind, key)
	}
}

func Exit(op, result string) {
	if globalTracer != nil {
		globalTracer.Exit(op, result)
	}
}

func Diagnostic(op, severity, text string) {
	if globalTracer != nil {
		globalTracer.Diagnostic(op, severity, text)
	}
}
