package main

import (
	"context"
	"email-classifier/client"
	"email-classifier/domain"
	"email-classifier/errors"
	"email-classifier/internal"
	"email-classifier/services"
	"email-classifier/ui"
	"email-classifier/validation"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

type options struct {
	url     string
	timeout time.Duration
	copy    bool
	text    string
	file    string
	sample  bool
}

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) (int, error) {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitUsage, err
	}

	opts, err := parseFlags(args, config, stderr)
	if err != nil {
		return exitUsage, err
	}

	log := logs.GetLoggerFromString(config.LogLevel)
	classifier, err := client.NewHTTPClassifier(log, opts.url, opts.timeout)
	if err != nil {
		return exitUsage, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := classifier.Ping(ctx); err != nil {
		log.Warn("Classification service is not reachable", "url", opts.url, "error", err)
	}

	validator := validation.NewValidator()
	page := ui.NewPage(log, validator,
		ui.WithClipboard(systemClipboard{}, osc52Copier{out: stderr}, printNotifier{out: stdout}))
	service := services.NewSubmissionService(log, classifier, validator, page)

	if err := submit(ctx, opts, page, service); err != nil {
		log.Debug("Classification failed", "error", err)
		printError(stderr, page.View.Snapshot().ErrorText)
		return exitFailed, nil
	}

	result, _ := page.Results.Current()
	printResult(stdout, result)

	if opts.copy {
		if _, err := page.Results.CopyToClipboard(ctx); err != nil {
			return exitFailed, err
		}
		if page.Results.CopyLabel() == ui.LabelCopied {
			fmt.Fprintln(stdout, ui.LabelCopied)
		}
	}
	return exitOK, nil
}

func parseFlags(args []string, config internal.Config, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.url, "url", config.ClassifierURL, "classification service base url")
	fs.DurationVar(&opts.timeout, "timeout", config.RequestTimeout, "request timeout")
	fs.BoolVar(&opts.copy, "copy", false, "copy the suggested response to the clipboard")
	fs.StringVar(&opts.text, "text", "", "email text to classify")
	fs.StringVar(&opts.file, "file", "", "path of a .txt email to classify")
	fs.BoolVar(&opts.sample, "sample", false, "classify a random sample email")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	modes := 0
	for _, set := range []bool{opts.text != "", opts.file != "", opts.sample} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fs.Usage()
		return options{}, fmt.Errorf("exactly one of -text, -file or -sample is required")
	}
	return opts, nil
}

func submit(ctx context.Context, opts options, page *ui.Page, service services.ISubmissionService) error {
	switch {
	case opts.file != "":
		if err := page.View.SelectTab(ui.TabFile); err != nil {
			return err
		}
		file, err := domain.FileFromPath(opts.file, domain.Picked)
		if err != nil {
			// A missing path is reported like an empty selection.
			page.View.ShowError(ui.MsgNoFileSelected)
			return fmt.Errorf("%w: %w", errors.ErrNoFileSelected, err)
		}
		page.Selection.Select(file)
		return service.SubmitFile(ctx)
	case opts.sample:
		return service.SubmitText(ctx, page.RandomSample())
	default:
		page.SetText(opts.text)
		return service.SubmitText(ctx, page.Text())
	}
}
