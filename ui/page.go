package ui

import (
	"email-classifier/domain"
	"email-classifier/validation"
	"log/slog"
	"math/rand/v2"
	"sync"
)

type pageOptions struct {
	clipboard Clipboard
	fallback  FallbackCopier
	notifier  Notifier
	samples   []string
	pick      func(n int) int
}

type Option func(*pageOptions)

func WithClipboard(clipboard Clipboard, fallback FallbackCopier, notifier Notifier) Option {
	return func(o *pageOptions) {
		o.clipboard = clipboard
		o.fallback = fallback
		o.notifier = notifier
	}
}

func WithSamples(samples []string) Option {
	return func(o *pageOptions) { o.samples = samples }
}

// WithPicker replaces the random index source of RandomSample.
func WithPicker(pick func(n int) int) Option {
	return func(o *pageOptions) { o.pick = pick }
}

// Page owns the whole UI state of one session. A front end builds one at
// startup and drops it when it exits.
type Page struct {
	View      *ViewState
	TextForm  *Form
	FileForm  *Form
	Selection *FileSelection
	DragDrop  *DragDropAdapter
	Results   *ResultRenderer

	hook    *changeHook
	samples []string
	pick    func(n int) int

	mu   sync.Mutex
	text string
}

func NewPage(log *slog.Logger, validator *validation.Validator, opts ...Option) *Page {
	o := pageOptions{
		samples: domain.SampleEmails(),
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hook := &changeHook{}
	view := newViewState(hook)
	selection := newFileSelection(hook)
	return &Page{
		View:      view,
		TextForm:  newForm(domain.KindText, hook),
		FileForm:  newForm(domain.KindFile, hook),
		Selection: selection,
		DragDrop:  NewDragDropAdapter(log, validator, selection, view),
		Results:   newResultRenderer(log, o.clipboard, o.fallback, o.notifier, hook),
		hook:      hook,
		samples:   o.samples,
		pick:      o.pick,
	}
}

// OnChange registers the redraw callback. It may be called from any goroutine.
func (p *Page) OnChange(fn func()) {
	p.hook.set(fn)
}

func (p *Page) Form(kind domain.InputKind) *Form {
	if kind == domain.KindFile {
		return p.FileForm
	}
	return p.TextForm
}

func (p *Page) SetText(text string) {
	p.mu.Lock()
	p.text = text
	p.mu.Unlock()
}

func (p *Page) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// RandomSample fills the text input with one of the sample emails.
func (p *Page) RandomSample() string {
	if len(p.samples) == 0 {
		return p.Text()
	}
	sample := p.samples[p.pick(len(p.samples))]
	p.SetText(sample)
	p.hook.fire()
	return sample
}
