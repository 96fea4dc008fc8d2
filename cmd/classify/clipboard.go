package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// systemClipboard writes through the OS clipboard (pbcopy, xclip, wl-copy...).
type systemClipboard struct{}

func (systemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// osc52Copier asks the terminal to set its clipboard with an OSC 52 escape.
// The terminal never acknowledges it.
type osc52Copier struct {
	out io.Writer
}

func (c osc52Copier) Copy(text string) {
	fmt.Fprintf(c.out, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
}

type printNotifier struct {
	out io.Writer
}

func (n printNotifier) Confirm(message string) {
	fmt.Fprintln(n.out, message)
}
