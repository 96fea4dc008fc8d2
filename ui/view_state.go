// Package ui holds the headless state of the classifier page: which tab is
// active, which panel is shown, the file selection, the per-form loading
// flags and the rendered result. Front ends read snapshots and redraw on
// change; they never decide state transitions themselves.
package ui

import (
	"email-classifier/errors"
	"fmt"
	"sync"
)

type Tab string

const (
	TabText Tab = "text"
	TabFile Tab = "file"
)

// Display is the panel currently revealed. Results and error are exclusive.
type Display int

const (
	DisplayNone Display = iota
	DisplayResults
	DisplayError
)

func (d Display) String() string {
	switch d {
	case DisplayResults:
		return "results"
	case DisplayError:
		return "error"
	default:
		return "none"
	}
}

// Panel names a region the front end should scroll into view.
type Panel string

const (
	PanelNone    Panel = ""
	PanelResults Panel = "results"
	PanelError   Panel = "error"
)

type ViewSnapshot struct {
	ActiveTab    Tab
	Display      Display
	ErrorText    string
	ScrollTarget Panel
}

type ViewState struct {
	mu    sync.Mutex
	state ViewSnapshot
	hook  *changeHook
	// scrollPending is set when a panel is revealed and cleared by TakeScroll.
	scrollPending bool
}

func NewViewState() *ViewState {
	return newViewState(nil)
}

func newViewState(hook *changeHook) *ViewState {
	return &ViewState{
		state: ViewSnapshot{ActiveTab: TabText, Display: DisplayNone},
		hook:  hook,
	}
}

// SelectTab activates tab and hides both panels.
func (v *ViewState) SelectTab(tab Tab) error {
	if tab != TabText && tab != TabFile {
		return fmt.Errorf("%w: %q", errors.ErrUnknownTab, tab)
	}
	v.update(func(s *ViewSnapshot) {
		s.ActiveTab = tab
		s.Display = DisplayNone
		s.ErrorText = ""
		s.ScrollTarget = PanelNone
		v.scrollPending = false
	})
	return nil
}

// ShowResults hides the error panel, then reveals the results panel.
func (v *ViewState) ShowResults() {
	v.update(func(s *ViewSnapshot) {
		s.ErrorText = ""
		s.Display = DisplayResults
		s.ScrollTarget = PanelResults
		v.scrollPending = true
	})
}

// ShowError hides the results panel, then reveals the error panel with message.
func (v *ViewState) ShowError(message string) {
	v.update(func(s *ViewSnapshot) {
		s.Display = DisplayError
		s.ErrorText = message
		s.ScrollTarget = PanelError
		v.scrollPending = true
	})
}

func (v *ViewState) HideAll() {
	v.update(func(s *ViewSnapshot) {
		s.Display = DisplayNone
		s.ErrorText = ""
		s.ScrollTarget = PanelNone
		v.scrollPending = false
	})
}

func (v *ViewState) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// TakeScroll returns the panel revealed since the previous call, once.
// Redraws that follow without a new reveal get PanelNone.
func (v *ViewState) TakeScroll() Panel {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.scrollPending {
		return PanelNone
	}
	v.scrollPending = false
	return v.state.ScrollTarget
}

func (v *ViewState) ResultsVisible() bool {
	return v.Snapshot().Display == DisplayResults
}

func (v *ViewState) ErrorVisible() bool {
	return v.Snapshot().Display == DisplayError
}

func (v *ViewState) update(fn func(s *ViewSnapshot)) {
	v.mu.Lock()
	fn(&v.state)
	v.mu.Unlock()
	v.hook.fire()
}
