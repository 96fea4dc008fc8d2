//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=../mocks/mock_clipboard.go -package=mocks
package ui

import (
	"context"
	"email-classifier/domain"
	"email-classifier/errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

const CopyFeedbackDuration = 2 * time.Second

// Clipboard is the platform clipboard. WriteText may fail.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// FallbackCopier copies through a synthetic path that has no failure signal.
type FallbackCopier interface {
	Copy(text string)
}

// Notifier shows a blocking confirmation to the user.
type Notifier interface {
	Confirm(message string)
}

type CopyMethod int

const (
	CopyNone CopyMethod = iota
	CopyPrimary
	CopyFallback
)

// Result is the projection of a successful response shown in the results panel.
type Result struct {
	Category       domain.Category
	Badge          string
	BadgeClass     string
	FillWidth      string
	FillRatio      float64
	ConfidenceText string
	ResponseText   string
}

type ResultRenderer struct {
	log       *slog.Logger
	clipboard Clipboard
	fallback  FallbackCopier
	notifier  Notifier
	hook      *changeHook
	now       func() time.Time

	mu          sync.Mutex
	current     Result
	rendered    bool
	copiedUntil time.Time
}

func NewResultRenderer(log *slog.Logger, clipboard Clipboard, fallback FallbackCopier, notifier Notifier) *ResultRenderer {
	return newResultRenderer(log, clipboard, fallback, notifier, nil)
}

func newResultRenderer(log *slog.Logger, clipboard Clipboard, fallback FallbackCopier,
	notifier Notifier, hook *changeHook) *ResultRenderer {
	return &ResultRenderer{
		log:       log,
		clipboard: clipboard,
		fallback:  fallback,
		notifier:  notifier,
		hook:      hook,
		now:       time.Now,
	}
}

// Render projects resp into the results panel. The response text is kept verbatim.
func (r *ResultRenderer) Render(resp domain.ClassificationResponse) Result {
	fill := resp.ConfidenceFill()
	result := Result{
		Category:       resp.Category,
		Badge:          resp.Category.Label(),
		BadgeClass:     "category-badge " + string(resp.Category),
		FillWidth:      strconv.FormatFloat(fill, 'f', -1, 64) + "%",
		FillRatio:      fill / 100,
		ConfidenceText: resp.ConfidenceText(),
		ResponseText:   resp.SuggestedResponse,
	}
	r.mu.Lock()
	r.current = result
	r.rendered = true
	r.copiedUntil = time.Time{}
	r.mu.Unlock()
	r.hook.fire()
	return result
}

// Current returns the last rendered result.
func (r *ResultRenderer) Current() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.rendered
}

// CopyToClipboard copies the suggested response. When the platform
// clipboard fails it falls back to the synthetic copy, which is assumed to
// succeed, and confirms with the notifier.
func (r *ResultRenderer) CopyToClipboard(ctx context.Context) (CopyMethod, error) {
	result, ok := r.Current()
	if !ok {
		return CopyNone, fmt.Errorf("%w: nothing to copy", errors.ErrClipboard)
	}

	var primaryErr error = errors.ErrClipboard
	if r.clipboard != nil {
		primaryErr = r.clipboard.WriteText(ctx, result.ResponseText)
	}
	if primaryErr == nil {
		r.mu.Lock()
		r.copiedUntil = r.now().Add(CopyFeedbackDuration)
		r.mu.Unlock()
		r.hook.fire()
		return CopyPrimary, nil
	}

	r.log.Debug("Primary clipboard failed, using fallback", "error", primaryErr)
	if r.fallback == nil {
		return CopyNone, fmt.Errorf("%w: %w", errors.ErrClipboard, primaryErr)
	}
	r.fallback.Copy(result.ResponseText)
	if r.notifier != nil {
		r.notifier.Confirm(MsgCopied)
	}
	return CopyFallback, nil
}

// CopyLabel is the copy button text: a transient confirmation after a
// successful primary copy, the default label otherwise.
func (r *ResultRenderer) CopyLabel() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.now().Before(r.copiedUntil) {
		return LabelCopied
	}
	return LabelCopy
}
