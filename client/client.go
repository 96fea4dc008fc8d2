//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_classifier.go -package=mocks
package client

import (
	"bytes"
	"context"
	"email-classifier/domain"
	"email-classifier/errors"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	classifyPath   = "/classify"
	uploadPath     = "/upload"
	healthPath     = "/"
	textField      = "email_text"
	fileField      = "file"
	requestIDKey   = "X-Request-ID"
	maxBodyBytes   = 1 * domain.MB
	DefaultTimeout = 30 * time.Second
)

// Classifier reaches the remote classification service.
type Classifier interface {
	ClassifyText(ctx context.Context, text string) (domain.ClassificationResponse, error)
	ClassifyFile(ctx context.Context, file domain.File) (domain.ClassificationResponse, error)
	Ping(ctx context.Context) error
}

type HTTPClassifier struct {
	log     *slog.Logger
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
}

func NewHTTPClassifier(log *slog.Logger, baseURL string, timeout time.Duration) (*HTTPClassifier, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid classifier url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid classifier url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClassifier{
		log:     log,
		baseURL: u,
		http:    &http.Client{},
		timeout: timeout,
	}, nil
}

// ClassifyText posts the text as the email_text multipart field.
func (c *HTTPClassifier) ClassifyText(ctx context.Context, text string) (domain.ClassificationResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField(textField, text); err != nil {
		return domain.ClassificationResponse{}, err
	}
	if err := writer.Close(); err != nil {
		return domain.ClassificationResponse{}, err
	}
	return c.post(ctx, classifyPath, writer.FormDataContentType(), body)
}

// ClassifyFile streams the file content as the file multipart field.
func (c *HTTPClassifier) ClassifyFile(ctx context.Context, file domain.File) (domain.ClassificationResponse, error) {
	if file.Open == nil {
		return domain.ClassificationResponse{}, errors.ErrNoFileSelected
	}
	content, err := file.Open()
	if err != nil {
		return domain.ClassificationResponse{}, fmt.Errorf("%w: opening %s: %w", errors.ErrLocalRead, file.Name, err)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		defer content.Close()
		part, err := writer.CreateFormFile(fileField, file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err = io.Copy(part, localReader{name: file.Name, r: content}); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	return c.post(ctx, uploadPath, writer.FormDataContentType(), pr)
}

// Ping probes GET / and only reports whether the service answered with 2xx.
func (c *HTTPClassifier) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(healthPath), nil)
	if err != nil {
		return err
	}
	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, maxBodyBytes))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w: health probe returned %d", errors.ErrTransport, response.StatusCode)
	}
	return nil
}

// post sends one request bounded by the client timeout. The body is decoded
// whatever the status code; only an unreadable body is a transport error.
func (c *HTTPClassifier) post(ctx context.Context, path, contentType string, body io.Reader) (domain.ClassificationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := RequestID(ctx)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), body)
	if err != nil {
		return domain.ClassificationResponse{}, err
	}
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", "application/json")
	request.Header.Set(requestIDKey, requestID)

	start := time.Now()
	response, err := c.http.Do(request)
	if err != nil {
		return domain.ClassificationResponse{}, fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}
	defer response.Body.Close()

	var decoded domain.ClassificationResponse
	if err := json.NewDecoder(io.LimitReader(response.Body, maxBodyBytes)).Decode(&decoded); err != nil {
		return domain.ClassificationResponse{}, fmt.Errorf("%w: status %d: undecodable body: %w",
			errors.ErrTransport, response.StatusCode, err)
	}

	c.log.Debug("Classification answered",
		"request_id", requestID,
		"path", path,
		"status", response.StatusCode,
		"success", decoded.Success,
		"latency_ms", time.Since(start).Milliseconds())
	return decoded, nil
}

// localReader tags read failures of the file being uploaded so they are not
// mistaken for network failures once they surface from the HTTP client.
type localReader struct {
	name string
	r    io.Reader
}

func (l localReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%w: reading %s: %w", errors.ErrLocalRead, l.name, err)
	}
	return n, err
}

type requestIDCtxKey struct{}

// WithRequestID attaches the id sent as X-Request-ID by the next request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestID returns the id carried by ctx, or a fresh one.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDCtxKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func (c *HTTPClassifier) endpoint(path string) string {
	return c.baseURL.String() + path
}
