package validation

import (
	"email-classifier/domain"
	"email-classifier/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateText(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		description string
		input       string
		expected    string
		wantErr     error
	}{
		{"Should fail on empty text", "", "", errors.ErrEmptyInput},
		{"Should fail on spaces only", "     ", "", errors.ErrEmptyInput},
		{"Should fail on mixed whitespace", " \t\n\r ", "", errors.ErrEmptyInput},
		{"Should trim surrounding whitespace", "  Reunião amanhã  \n", "Reunião amanhã", nil},
		{"Should keep inner spacing", "a  b", "a  b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			got, err := v.ValidateText(tt.input)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.Empty(got)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, got)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v := NewValidator()

	base := domain.File{Name: "email.txt", Size: 2048, DeclaredType: "text/plain", Origin: domain.Picked}

	tests := []struct {
		description string
		modify      func(f *domain.File)
		wantErr     error
	}{
		{"Should succeed with a small txt file", func(f *domain.File) {}, nil},
		{"Should succeed at exactly the size ceiling", func(f *domain.File) { f.Size = 10_485_760 }, nil},
		{"Should fail one byte over the ceiling", func(f *domain.File) { f.Size = 10_485_761 }, errors.ErrFileTooLarge},
		{"Should fail on a 12MB file", func(f *domain.File) { f.Size = 12 * domain.MB }, errors.ErrFileTooLarge},
		{"Should fail on a pdf", func(f *domain.File) { f.Name = "email.pdf" }, errors.ErrUnsupportedFormat},
		{"Should fail on upper case extension", func(f *domain.File) { f.Name = "EMAIL.TXT" }, errors.ErrUnsupportedFormat},
		{"Should fail on picked file declaring text/plain with wrong name", func(f *domain.File) {
			f.Name = "notes.md"
		}, errors.ErrUnsupportedFormat},
		{"Should accept dropped text/plain with any name", func(f *domain.File) {
			f.Name = "notes"
			f.Origin = domain.Dropped
		}, nil},
		{"Should fail on dropped file with other declared type", func(f *domain.File) {
			f.Name = "notes.md"
			f.DeclaredType = "text/markdown"
			f.Origin = domain.Dropped
		}, errors.ErrUnsupportedFormat},
		{"Should check format before size", func(f *domain.File) {
			f.Name = "huge.zip"
			f.Size = 20 * domain.MB
		}, errors.ErrUnsupportedFormat},
		{"Should fail without a name", func(f *domain.File) { f.Name = "" }, errors.ErrNoFileSelected},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			tc := base
			tt.modify(&tc)
			got, err := v.ValidateFile(&tc)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tc.Name, got.Name)
		})
	}
}

func TestValidator_ValidateFile_NoFile(t *testing.T) {
	_, err := NewValidator().ValidateFile(nil)
	require.ErrorIs(t, err, errors.ErrNoFileSelected)
}

func TestValidator_AcceptsDrop(t *testing.T) {
	req := require.New(t)
	v := NewValidator()
	req.True(v.AcceptsDrop(domain.File{Name: "a.txt"}))
	req.True(v.AcceptsDrop(domain.File{Name: "a", DeclaredType: "text/plain; charset=utf-8"}))
	req.False(v.AcceptsDrop(domain.File{Name: "a.png", DeclaredType: "image/png"}))
	req.False(v.AcceptsDrop(domain.File{Name: "notes.md"}))
}
