package diagnostic

import (
	"fmt"
	"sync"
)

// Diagnostic is one informational message tied to a source location.
type Diagnostic struct {
	File    string
	Line    int
	Message string
}

// String formats d as "<file>(<line>): info: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s(%d): info: %s", d.File, d.Line, d.Message)
}

// Collector accumulates diagnostics in append order. It is safe for
// concurrent Add calls (compiler.Run does not use it: it gathers
// diagnostics in per-function slices), mirroring core.Graph's
// separate-mutex discipline: a single
// RWMutex here since diagnostics have no adjacency structure to split
// the lock over.
type Collector struct {
	mu    sync.RWMutex
	items []Diagnostic
}

// Add appends d to the collector.
func (c *Collector) Add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// All returns a copy of every diagnostic added so far, in append order.
func (c *Collector) All() []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of diagnostics added so far.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
