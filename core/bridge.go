package core

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Bridge posts messages into a running program from other goroutines. It is
// created before the program so that components built earlier can hold it.
type Bridge struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewBridge() *Bridge { return &Bridge{} }

func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()
}

func (b *Bridge) Detach() {
	b.Attach(nil)
}

// Send reports false when no program is attached.
func (b *Bridge) Send(msg tea.Msg) bool {
	b.mu.RLock()
	p := b.program
	b.mu.RUnlock()
	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// Dispatch runs fn on the program's update loop, or inline when detached.
func (b *Bridge) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	if !b.Send(DispatchMsg{Fn: fn}) {
		fn()
	}
}
