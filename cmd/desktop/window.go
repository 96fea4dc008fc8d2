package main

import (
	"context"
	"email-classifier/domain"
	"email-classifier/services"
	"email-classifier/ui"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// desktop binds the fyne widgets to a ui.Page. Widgets are only touched
// from refresh, which always runs on the fyne thread.
type desktop struct {
	ctx     context.Context
	log     *slog.Logger
	window  fyne.Window
	page    *ui.Page
	service services.ISubmissionService

	tabs        *container.AppTabs
	entry       *widget.Entry
	analyzeText *widget.Button
	sample      *widget.Button
	pick        *widget.Button
	analyzeFile *widget.Button
	dropZone    *widget.Card
	textLoading *widget.ProgressBarInfinite
	fileLoading *widget.ProgressBarInfinite

	results    *fyne.Container
	badge      *widget.Label
	confidence *widget.ProgressBar
	response   *widget.Label
	copyButton *widget.Button
	errorLabel *widget.Label
	scroll     *container.Scroll
}

func newDesktop(ctx context.Context, log *slog.Logger, w fyne.Window, page *ui.Page, service services.ISubmissionService) *desktop {
	d := &desktop{ctx: ctx, log: log, window: w, page: page, service: service}

	d.entry = widget.NewMultiLineEntry()
	d.entry.SetPlaceHolder("Cole aqui o conteúdo do email...")
	d.entry.SetMinRowsVisible(10)
	d.entry.OnChanged = page.SetText

	d.analyzeText = widget.NewButton("🔍 Analisar Email", d.submitText)
	d.analyzeText.Importance = widget.HighImportance
	d.sample = widget.NewButton("🎲 Exemplo", func() { page.RandomSample() })
	d.textLoading = widget.NewProgressBarInfinite()

	d.pick = widget.NewButton("📁 Escolher arquivo", d.openFile)
	d.analyzeFile = widget.NewButton("🔍 Analisar Arquivo", d.submitFile)
	d.analyzeFile.Importance = widget.HighImportance
	d.dropZone = widget.NewCard("", "", d.pick)
	d.fileLoading = widget.NewProgressBarInfinite()

	d.badge = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	d.confidence = widget.NewProgressBar()
	d.response = widget.NewLabel("")
	d.response.Wrapping = fyne.TextWrapWord
	d.copyButton = widget.NewButton(ui.LabelCopy, d.copyResponse)
	d.results = container.NewVBox(
		widget.NewLabelWithStyle("Resultado da Análise", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Categoria:"), d.badge),
		widget.NewLabel("Confiança:"), d.confidence,
		widget.NewLabel("Resposta sugerida:"), d.response,
		d.copyButton,
	)

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Importance = widget.DangerImportance
	d.errorLabel.Wrapping = fyne.TextWrapWord
	return d
}

func (d *desktop) layout() fyne.CanvasObject {
	textTab := container.NewVBox(
		d.entry,
		container.NewHBox(d.analyzeText, d.sample),
		d.textLoading,
	)
	fileTab := container.NewVBox(d.dropZone, d.analyzeFile, d.fileLoading)

	d.tabs = container.NewAppTabs(
		container.NewTabItem("📝 Texto", textTab),
		container.NewTabItem("📄 Arquivo", fileTab),
	)
	d.tabs.OnSelected = func(item *container.TabItem) {
		tab := ui.TabText
		if d.tabs.SelectedIndex() == 1 {
			tab = ui.TabFile
		}
		if err := d.page.View.SelectTab(tab); err != nil {
			d.log.Error("Tab switch failed", "tab", item.Text, "error", err)
		}
	}

	d.scroll = container.NewVScroll(container.NewVBox(
		title("📧 Classificador de Emails"),
		d.tabs,
		d.errorLabel,
		d.results,
	))
	return d.scroll
}

func (d *desktop) submitText() {
	go func() { _ = d.service.SubmitText(d.ctx, d.page.Text()) }()
}

func (d *desktop) submitFile() {
	go func() { _ = d.service.SubmitFile(d.ctx) }()
}

func (d *desktop) openFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.log.Error("File dialog failed", "error", err)
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		_ = reader.Close()

		file, err := domain.FileFromPath(uri.Path(), domain.Picked)
		if err != nil {
			d.log.Error("Selected file is unreadable", "path", uri.Path(), "error", err)
			d.page.View.ShowError(ui.MsgNoFileSelected)
			return
		}
		file.DeclaredType = uri.MimeType()
		d.page.Selection.Select(file)
	}, d.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.Show()
}

// onDropped feeds window drops to the drag and drop adapter. fyne reports
// no hover events, so the highlight is raised right before the drop.
func (d *desktop) onDropped(_ fyne.Position, uris []fyne.URI) {
	files := make([]domain.File, 0, len(uris))
	for _, uri := range uris {
		file, err := domain.FileFromPath(uri.Path(), domain.Dropped)
		if err != nil {
			d.log.Warn("Dropped item is not a readable file", "uri", uri.String(), "error", err)
			continue
		}
		file.DeclaredType = uri.MimeType()
		files = append(files, file)
	}
	if len(files) > 0 {
		d.tabs.SelectIndex(1)
	}
	d.page.DragDrop.DragOver()
	if err := d.page.DragDrop.Drop(files); err != nil {
		d.log.Debug("Drop rejected", "error", err)
	}
}

func (d *desktop) copyResponse() {
	if _, err := d.page.Results.CopyToClipboard(d.ctx); err != nil {
		d.log.Error("Copy failed", "error", err)
		return
	}
	time.AfterFunc(ui.CopyFeedbackDuration, func() { fyne.Do(d.refresh) })
}

// refresh redraws every widget from the page state.
func (d *desktop) refresh() {
	view := d.page.View.Snapshot()
	if d.tabs != nil {
		index := 0
		if view.ActiveTab == ui.TabFile {
			index = 1
		}
		if d.tabs.SelectedIndex() != index {
			d.tabs.SelectIndex(index)
		}
	}
	if text := d.page.Text(); d.entry.Text != text {
		d.entry.SetText(text)
	}

	setEnabled(d.analyzeText, d.page.TextForm.Enabled())
	setEnabled(d.sample, d.page.TextForm.Enabled())
	setVisible(d.textLoading, d.page.TextForm.Loading())
	setEnabled(d.analyzeFile, d.page.FileForm.Enabled())
	setEnabled(d.pick, d.page.FileForm.Enabled())
	setVisible(d.fileLoading, d.page.FileForm.Loading())

	label := d.page.Selection.Label()
	d.dropZone.SetTitle(label.Icon + " " + label.Title)
	d.dropZone.SetSubTitle(label.Detail)

	d.errorLabel.SetText("❌ " + view.ErrorText)
	setVisible(d.errorLabel, view.Display == ui.DisplayError)

	if result, ok := d.page.Results.Current(); ok {
		d.badge.SetText(result.Badge)
		d.confidence.SetValue(result.FillRatio)
		d.confidence.TextFormatter = func() string { return result.ConfidenceText }
		d.response.SetText(result.ResponseText)
		d.copyButton.SetText(d.page.Results.CopyLabel())
	}
	setVisible(d.results, view.Display == ui.DisplayResults)

	if d.scroll != nil && d.page.View.TakeScroll() != ui.PanelNone {
		d.scroll.ScrollToBottom()
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
		return
	}
	b.Disable()
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
		return
	}
	o.Hide()
}
