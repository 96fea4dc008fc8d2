package main

import (
	"context"
	"email-classifier/client"
	"email-classifier/internal"
	"email-classifier/services"
	"email-classifier/ui"
	"email-classifier/validation"
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

var Indigo = color.NRGBA{R: 102, G: 126, B: 234, A: 255}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	classifier, err := client.NewHTTPClassifier(log, config.ClassifierURL, config.RequestTimeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := classifier.Ping(ctx); err != nil {
			log.Warn("Classification service is not reachable", "url", config.ClassifierURL, "error", err)
			return
		}
		log.Info("Classification service is up", "url", config.ClassifierURL)
	}()

	a := app.New()
	w := a.NewWindow("Classificador de Emails")
	w.Resize(fyne.NewSize(900, 720))

	validator := validation.NewValidator()
	page := ui.NewPage(log, validator, ui.WithClipboard(fyneClipboard{window: w}, nil, dialogNotifier{window: w}))
	service := services.NewSubmissionService(log, classifier, validator, page)

	d := newDesktop(ctx, log, w, page, service)
	page.OnChange(func() { fyne.Do(d.refresh) })
	w.SetContent(d.layout())
	w.SetOnDropped(d.onDropped)
	d.refresh()

	w.ShowAndRun()
	return nil
}

func title(text string) *canvas.Text {
	t := canvas.NewText(text, Indigo)
	t.TextSize = 24
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}
