// Package domain contains the core concepts of the email classifier client.
// Requests are built once per submit and discarded after the response is handled.
package domain

import (
	"email-classifier/errors"
	"strconv"
)

type InputKind string

const (
	KindText InputKind = "text"
	KindFile InputKind = "file"
)

// ClassificationRequest is either a text or a file submission.
type ClassificationRequest struct {
	Kind    InputKind
	Content string
	File    *File
}

func NewTextRequest(content string) ClassificationRequest {
	return ClassificationRequest{Kind: KindText, Content: content}
}

func NewFileRequest(file File) ClassificationRequest {
	return ClassificationRequest{Kind: KindFile, File: &file}
}

// Validate checks that exactly one payload matching Kind is set.
func (r ClassificationRequest) Validate() error {
	switch r.Kind {
	case KindText:
		if r.File != nil {
			return errors.ErrInvalidRequest
		}
	case KindFile:
		if r.File == nil || r.Content != "" {
			return errors.ErrInvalidRequest
		}
	default:
		return errors.ErrInvalidRequest
	}
	return nil
}

// ClassificationResponse is the JSON body returned by both endpoints.
type ClassificationResponse struct {
	Success           bool     `json:"success"`
	Category          Category `json:"category,omitempty"`
	Confidence        float64  `json:"confidence"`
	SuggestedResponse string   `json:"suggested_response,omitempty"`
	Error             string   `json:"error,omitempty"`
}

// ConfidenceText renders the score as sent by the service, e.g. "87%".
func (r ClassificationResponse) ConfidenceText() string {
	return strconv.FormatFloat(r.Confidence, 'f', -1, 64) + "%"
}

// ConfidenceFill is the bar fill in percent, clamped to [0, 100].
func (r ClassificationResponse) ConfidenceFill() float64 {
	return min(max(r.Confidence, 0), 100)
}
