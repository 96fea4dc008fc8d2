package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	TextPlain   MIME = "text/plain"
	OctetStream MIME = "application/octet-stream"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
)

// Matches reports whether a declared or detected media type, parameters
// included, names the expected MIME.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// IsPlainText reports whether declared is text/plain, with or without charset.
func IsPlainText(declared string) bool {
	_, ok := Matches(declared, TextPlain)
	return ok
}

// ToMIME strips parameters from a media type string.
func ToMIME(raw string) MIME {
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil || mt == "" {
		return Unknown
	}
	return MIME(mt)
}

// Detect sniffs the media type of the leading bytes of a file.
func Detect(head []byte) string {
	return mimetype.Detect(head).String()
}

// IsText reports whether content sniffs as text/plain or one of its
// descendants (e.g. message/rfc822, text/csv).
func IsText(content []byte) bool {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if m.Is(string(TextPlain)) {
			return true
		}
	}
	return false
}
