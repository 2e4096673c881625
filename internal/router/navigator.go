package router

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// Flow names one of the two prototype entry points offered by the splash.
type Flow string

const (
	FlowCountry Flow = "country"
	FlowToken   Flow = "token"
)

// Flows lists the flows in splash order.
func Flows() []Flow {
	return []Flow{FlowCountry, FlowToken}
}

var flowEntries = map[Flow]string{
	FlowCountry: "/(tabs)",
	FlowToken:   "/(tabs-token)",
}

// FlowEntry resolves a flow to the path its first screen lives at.
func FlowEntry(flow Flow) (string, error) {
	path, ok := flowEntries[flow]
	if !ok {
		return "", fmt.Errorf("unknown flow %q (want one of %v)", flow, Flows())
	}
	return path, nil
}

// ParseFlow converts user input into a Flow. Empty input means no flow.
func ParseFlow(value string) (Flow, error) {
	if value == "" {
		return "", nil
	}
	flow := Flow(value)
	if _, err := FlowEntry(flow); err != nil {
		return "", err
	}
	return flow, nil
}

// Navigator is the push/pop stack of visited screens. The bottom entry is the
// root and is never popped.
type Navigator struct {
	mu    sync.RWMutex
	stack []Match
}

// NewNavigator creates a navigator rooted at start.
func NewNavigator(start string) (*Navigator, error) {
	m, err := Resolve(start)
	if err != nil {
		return nil, err
	}
	return &Navigator{stack: []Match{m}}, nil
}

// Push resolves path and places it on top of the stack. Unknown paths leave the
// stack untouched.
func (n *Navigator) Push(path string) error {
	m, err := Resolve(path)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, m)
	return nil
}

// Reset clears the stack down to a new root.
func (n *Navigator) Reset(path string) error {
	m, err := Resolve(path)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = []Match{m}
	return nil
}

// Back pops the current screen. At the root it does nothing and returns false.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Current returns the screen on top of the stack.
func (n *Navigator) Current() Match {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack[len(n.stack)-1]
}

// Depth is the number of screens on the stack.
func (n *Navigator) Depth() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.stack)
}

// CanGoBack reports whether Back would pop a screen.
func (n *Navigator) CanGoBack() bool {
	return n.Depth() > 1
}

// History returns the stack's paths from root to top.
func (n *Navigator) History() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return lo.Map(n.stack, func(m Match, _ int) string { return m.Path })
}
