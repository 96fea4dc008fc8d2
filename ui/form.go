package ui

import (
	"email-classifier/domain"
	"email-classifier/errors"
	"sync"
	"sync/atomic"
)

// Form carries the submit control state of one input mode.
// inFlight guards dispatch; loading drives the disabled button and indicator.
type Form struct {
	kind     domain.InputKind
	inFlight atomic.Bool
	loading  atomic.Bool
	hook     *changeHook
}

func newForm(kind domain.InputKind, hook *changeHook) *Form {
	return &Form{kind: kind, hook: hook}
}

func (f *Form) Kind() domain.InputKind {
	return f.kind
}

// Begin claims the form for one submission. The returned release clears
// loading and the in-flight flag and is safe to call more than once.
func (f *Form) Begin() (func(), error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, errors.ErrSubmissionInFlight
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			f.loading.Store(false)
			f.inFlight.Store(false)
			f.hook.fire()
		})
	}, nil
}

// StartLoading disables the control and shows the indicator.
func (f *Form) StartLoading() {
	f.loading.Store(true)
	f.hook.fire()
}

func (f *Form) Loading() bool {
	return f.loading.Load()
}

func (f *Form) InFlight() bool {
	return f.inFlight.Load()
}

func (f *Form) Enabled() bool {
	return !f.loading.Load()
}
