package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"Plain text", "text/plain", TextPlain, true},
		{"JSON", "application/json", JSON, true},
		{"PDF", "application/pdf", PDF, true},

		// Fallback / mismatch
		{"Mismatch", "text/plain; charset=utf-8", JSON, false},
		{"Unknown type", "application/octet-stream", TextPlain, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
		{"Empty", "", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestToMIME(t *testing.T) {
	req := require.New(t)
	req.Equal(TextPlain, ToMIME("text/plain; charset=utf-8"))
	req.Equal(Unknown, ToMIME("???"))
	req.Equal(Unknown, ToMIME(""))
}

func TestDetect_PlainText(t *testing.T) {
	req := require.New(t)

	// Given the leading bytes of a plain text email
	head := []byte("Reunião de equipe agendada para amanhã às 14h.")

	// When sniffing
	detected := Detect(head)

	// Then it is recognised as plain text
	req.True(IsPlainText(detected), detected)
}

func TestDetect_PDF(t *testing.T) {
	req := require.New(t)
	detected := Detect([]byte("%PDF-1.7\n%âãÏÓ\n"))
	req.False(IsPlainText(detected))
	req.Equal(PDF, ToMIME(detected))
}

func TestIsText(t *testing.T) {
	req := require.New(t)
	req.True(IsText([]byte("Olá, tudo bem?")))
	req.True(IsText([]byte("From: ana@example.com\nSubject: Reunião\n\nBom dia")))
	req.False(IsText([]byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3")))
	req.False(IsText([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}))
}
