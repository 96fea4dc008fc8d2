package stub

import (
	"regexp"
	"strings"
)

var headerLine = regexp.MustCompile(`(?im)^\s*(from|to|subject|date|cc|bcc|sent|de|para|assunto|data|enviado em):.*$`)

// StripHeaders removes common email header lines and blank lines left behind.
func StripHeaders(text string) string {
	text = headerLine.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
