// Package validation checks user input locally so that invalid submissions
// never reach the classification service.
package validation

import (
	"email-classifier/domain"
	"email-classifier/domain/mimetypes"
	"email-classifier/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type textInput struct {
	Content string `validate:"required"`
}

type fileInput struct {
	Name string `validate:"required"`
	Size int64  `validate:"gte=0"`
}

type Validator struct {
	validate   *validator.Validate
	constraint domain.UploadConstraint
}

func NewValidator() *Validator {
	return &Validator{
		validate:   validator.New(),
		constraint: domain.Upload(),
	}
}

// ValidateText returns the trimmed text, or ErrEmptyInput when nothing but
// whitespace was entered.
func (v *Validator) ValidateText(s string) (string, error) {
	input := textInput{Content: strings.TrimSpace(s)}
	if err := v.validate.Struct(input); err != nil {
		return "", errors.ErrEmptyInput
	}
	return input.Content, nil
}

// ValidateFile checks presence, extension and size, in that order.
// A file dropped with a declared text/plain type is accepted whatever its name.
func (v *Validator) ValidateFile(f *domain.File) (domain.File, error) {
	if f == nil {
		return domain.File{}, errors.ErrNoFileSelected
	}
	if err := v.validate.Struct(fileInput{Name: f.Name, Size: f.Size}); err != nil {
		return domain.File{}, errors.ErrNoFileSelected
	}
	if !v.acceptsFormat(*f) {
		return domain.File{}, errors.ErrUnsupportedFormat
	}
	if f.Size > v.constraint.MaxBytes {
		return domain.File{}, errors.ErrFileTooLarge
	}
	return *f, nil
}

// AcceptsDrop reports whether a dropped item may enter the selection path.
func (v *Validator) AcceptsDrop(f domain.File) bool {
	return mimetypes.IsPlainText(f.DeclaredType) || strings.HasSuffix(f.Name, v.constraint.AllowedExtension)
}

func (v *Validator) acceptsFormat(f domain.File) bool {
	if strings.HasSuffix(f.Name, v.constraint.AllowedExtension) {
		return true
	}
	return f.Origin == domain.Dropped && mimetypes.IsPlainText(f.DeclaredType)
}
