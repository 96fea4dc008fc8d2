package ui

import "sync"

// changeHook is the single redraw callback shared by every part of a Page.
// It is always invoked outside the component locks.
type changeHook struct {
	mu sync.RWMutex
	fn func()
}

func (h *changeHook) set(fn func()) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = fn
}

func (h *changeHook) fire() {
	if h == nil {
		return
	}
	h.mu.RLock()
	fn := h.fn
	h.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
