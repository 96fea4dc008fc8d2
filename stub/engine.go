// Package stub is a local stand-in for the classification service. It serves
// the same HTTP contract as the real one and scores emails with keyword hits.
package stub

import (
	"email-classifier/domain"
	"email-classifier/keywords"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

const (
	MinTextLength       = 5
	baseConfidence      = 60
	confidencePerHit    = 10
	maxConfidence       = 95
	undecidedConfidence = 50
	MsgTooShort         = "Texto muito curto ou vazio"
)

// Engine picks the category with the most keyword hits.
type Engine struct {
	log     *slog.Logger
	matcher *keywords.Matcher
	pick    func(n int) int
}

func NewEngine(log *slog.Logger) (*Engine, error) {
	matcher, err := keywords.NewMatcher(log, dictionaryByLabel())
	if err != nil {
		return nil, err
	}
	return &Engine{log: log, matcher: matcher, pick: rand.IntN}, nil
}

// Classify scores text and builds the service response.
// Ties go to the category listed first in domain.Categories.
func (e *Engine) Classify(text string) domain.ClassificationResponse {
	body := StripHeaders(text)
	if utf8.RuneCountInString(strings.TrimSpace(body)) < MinTextLength {
		return domain.ClassificationResponse{Success: false, Error: MsgTooShort}
	}

	counts := e.matcher.Count(body)
	best, hits := domain.Undefined, 0
	for _, category := range domain.Categories() {
		if n := counts[string(category)]; n > hits {
			best, hits = category, n
		}
	}

	confidence := float64(undecidedConfidence)
	if hits > 0 {
		confidence = float64(min(maxConfidence, baseConfidence+confidencePerHit*hits))
	} else if info := whatlanggo.Detect(body); info.IsReliable() && info.Lang != whatlanggo.Por {
		best = domain.Failure
		e.log.Debug("Text is not Portuguese", "lang", info.Lang.Iso6391(), "confidence", info.Confidence)
	}

	e.log.Debug("Email scored", "category", best, "hits", hits, "counts", counts)
	return domain.ClassificationResponse{
		Success:           true,
		Category:          best,
		Confidence:        confidence,
		SuggestedResponse: e.suggest(best),
	}
}

func (e *Engine) suggest(category domain.Category) string {
	options := templates[category]
	if len(options) == 0 {
		options = templates[domain.Undefined]
	}
	return options[e.pick(len(options))]
}
