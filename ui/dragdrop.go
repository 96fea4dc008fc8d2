package ui

import (
	"email-classifier/domain"
	"email-classifier/errors"
	"email-classifier/validation"
	"log/slog"

	"github.com/samber/lo"
)

// DragDropAdapter turns drag events over the upload area into selections.
type DragDropAdapter struct {
	log       *slog.Logger
	validator *validation.Validator
	selection *FileSelection
	view      *ViewState
}

func NewDragDropAdapter(log *slog.Logger, validator *validation.Validator,
	selection *FileSelection, view *ViewState) *DragDropAdapter {
	return &DragDropAdapter{log: log, validator: validator, selection: selection, view: view}
}

func (d *DragDropAdapter) DragOver() {
	d.selection.setHovered(true)
}

// DragLeave keeps the highlight when a file is already selected.
func (d *DragDropAdapter) DragLeave() {
	if !d.selection.HasFile() {
		d.selection.setHovered(false)
	}
}

// Drop considers the first item only. Acceptance rests on the declared type
// and the file name; content sniffing is only logged. Accepted items go
// through the same selection path as a manual pick; others surface
// ErrUnsupportedFormat and leave the current selection untouched.
func (d *DragDropAdapter) Drop(items []domain.File) error {
	item, ok := lo.First(items)
	if !ok {
		d.DragLeave()
		return nil
	}
	if len(items) > 1 {
		d.log.Debug("Ignoring extra dropped items", "count", len(items)-1)
	}
	item.Origin = domain.Dropped

	if !d.validator.AcceptsDrop(item) {
		if sniffed, err := item.Sniff(); err == nil {
			d.log.Debug("Dropped file refused", "name", item.Name, "declared", item.DeclaredType, "sniffed", sniffed)
		}
		d.DragLeave()
		d.view.ShowError(MessageFor(errors.ErrUnsupportedFormat, domain.KindFile))
		return errors.ErrUnsupportedFormat
	}
	d.selection.setHovered(false)
	d.selection.Select(item)
	return nil
}
