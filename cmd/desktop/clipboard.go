package main

import (
	"context"
	"email-classifier/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// fyneClipboard writes through the window clipboard. Both types below are
// called from button callbacks, on the fyne thread.
type fyneClipboard struct {
	window fyne.Window
}

func (c fyneClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.window.Clipboard().SetContent(text)
	return nil
}

type dialogNotifier struct {
	window fyne.Window
}

func (n dialogNotifier) Confirm(message string) {
	dialog.ShowInformation(ui.LabelCopied, message, n.window)
}
