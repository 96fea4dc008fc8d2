package services

import (
	"context"
	"email-classifier/client"
	"email-classifier/domain"
	"email-classifier/errors"
	"email-classifier/ui"
	"email-classifier/validation"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type ISubmissionService interface {
	SubmitText(ctx context.Context, text string) error
	SubmitFile(ctx context.Context) error
}

// SubmissionService runs one submission per call:
// claim form → validate → loading → dispatch → render or error → release.
type SubmissionService struct {
	log        *slog.Logger
	classifier client.Classifier
	validator  *validation.Validator
	page       *ui.Page
}

func NewSubmissionService(log *slog.Logger, classifier client.Classifier,
	validator *validation.Validator, page *ui.Page) *SubmissionService {
	return &SubmissionService{
		log:        log,
		classifier: classifier,
		validator:  validator,
		page:       page,
	}
}

// SubmitText classifies pasted text through the text endpoint.
func (s *SubmissionService) SubmitText(ctx context.Context, text string) error {
	return s.submit(ctx, s.page.TextForm, func() (domain.ClassificationRequest, error) {
		content, err := s.validator.ValidateText(text)
		if err != nil {
			return domain.ClassificationRequest{}, err
		}
		return domain.NewTextRequest(content), nil
	})
}

// SubmitFile classifies the file currently held by the page selection.
func (s *SubmissionService) SubmitFile(ctx context.Context) error {
	return s.submit(ctx, s.page.FileForm, func() (domain.ClassificationRequest, error) {
		file, err := s.validator.ValidateFile(s.page.Selection.Selected())
		if err != nil {
			return domain.ClassificationRequest{}, err
		}
		return domain.NewFileRequest(file), nil
	})
}

func (s *SubmissionService) submit(ctx context.Context, form *ui.Form,
	build func() (domain.ClassificationRequest, error)) error {
	release, err := form.Begin()
	if err != nil {
		s.log.Debug("Submission ignored", "mode", form.Kind(), "error", err)
		return err
	}
	defer release()

	request, err := build()
	if err != nil {
		s.page.View.ShowError(ui.MessageFor(err, form.Kind()))
		return err
	}
	if err := request.Validate(); err != nil {
		s.page.View.ShowError(ui.MessageFor(err, form.Kind()))
		return err
	}

	form.StartLoading()
	s.page.View.HideAll()

	requestID := uuid.NewString()
	ctx = client.WithRequestID(ctx, requestID)
	log := s.log.With("request_id", requestID, "mode", request.Kind)

	response, err := s.dispatch(ctx, request)
	if err != nil {
		log.Error("Classification request failed", "error", err)
		s.page.View.ShowError(s.transportMessage(err, form.Kind()))
		return err
	}

	if !response.Success {
		message := response.Error
		if message == "" {
			message = ui.ServiceFallback(form.Kind())
		}
		log.Warn("Classification rejected by service", "error", response.Error)
		s.page.View.ShowError(message)
		return fmt.Errorf("%w: %s", errors.ErrService, message)
	}

	s.page.Results.Render(response)
	s.page.View.ShowResults()
	log.Info("Email classified", "category", response.Category, "confidence", response.Confidence)
	return nil
}

func (s *SubmissionService) dispatch(ctx context.Context, request domain.ClassificationRequest) (domain.ClassificationResponse, error) {
	if request.Kind == domain.KindFile {
		return s.classifier.ClassifyFile(ctx, *request.File)
	}
	return s.classifier.ClassifyText(ctx, request.Content)
}

// transportMessage hides the cause from the user: transport failures get the
// connection message, local failures (e.g. unreadable file) the mode fallback.
func (s *SubmissionService) transportMessage(err error, kind domain.InputKind) string {
	if goerrors.Is(err, errors.ErrLocalRead) {
		return ui.ServiceFallback(kind)
	}
	if goerrors.Is(err, errors.ErrTransport) || goerrors.Is(err, context.DeadlineExceeded) || goerrors.Is(err, context.Canceled) {
		return ui.MsgConnection
	}
	return ui.ServiceFallback(kind)
}
