package keywords

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *Matcher {
	m, err := NewMatcher(logs.GetLoggerFromLevel(slog.LevelDebug), map[string][]string{
		"spam":     {"parabéns", "ganhou", "clique aqui"},
		"trabalho": {"reunião", "relatório", "prazo"},
		"pessoal":  {"café"},
		"suporte":  {"bug"},
	})
	require.NoError(t, err)
	return m
}

// The dictionary uses specific words to avoid partial collisions
func TestMatcher_Count(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name     string
		input    string
		expected map[string]int
	}{
		{
			name:     "Accents and case are ignored",
			input:    "PARABENS! Voce GANHOU um premio",
			expected: map[string]int{"spam": 2},
		},
		{
			name:     "Leet speak is folded",
			input:    "g4nh0u",
			expected: map[string]int{"spam": 1},
		},
		{
			name:     "Multi word patterns match across spaces and punctuation",
			input:    "Clique... aqui agora",
			expected: map[string]int{"spam": 1},
		},
		{
			name:     "Several labels in one text",
			input:    "Reunião sobre o relatório. Prazo: sexta.",
			expected: map[string]int{"trabalho": 3},
		},
		{
			name:     "Repeated words count every time",
			input:    "prazo, prazo, prazo",
			expected: map[string]int{"trabalho": 3},
		},
		{
			name:     "Words inside longer words do not match",
			input:    "Preciso debugar o cafézinho do prazoso projeto",
			expected: map[string]int{},
		},
		{
			name:     "Words split across a boundary do not match",
			input:    "Em bu g-gestão, tudo ok; ca fé",
			expected: map[string]int{},
		},
		{
			name:     "Letters of adjacent words do not join",
			input:    "ganho um bom café expresso",
			expected: map[string]int{"pessoal": 1},
		},
		{
			name:     "Exclamation marks separate words",
			input:    "BUG!!!Prazo!",
			expected: map[string]int{"suporte": 1, "trabalho": 1},
		},
		{
			name:     "Nothing matches",
			input:    "Bom dia, tudo bem?",
			expected: map[string]int{},
		},
		{
			name:     "Empty string",
			input:    "",
			expected: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, m.Count(tt.input), "input=%s", tt.input)
		})
	}
}

func TestMatcher_Find(t *testing.T) {
	req := require.New(t)
	m := newTestMatcher(t)

	hits := m.Find("Você,  ganhou")

	req.Len(hits, 1)
	req.Equal("spam", hits[0].Label)
	req.Equal("ganhou", hits[0].Word)
	req.Equal(5, hits[0].Pos)
}

func TestMatcher_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given only noise the dictionary is unusable
	_, err := NewMatcher(log, map[string][]string{"spam": {"...", ",,,", ""}})
	req.Error(err)

	// Given a word shared by two labels, the first label in sorted order owns it
	m, err := NewMatcher(log, map[string][]string{
		"trabalho":   {"urgente"},
		"importante": {"urgente", "..."},
	})
	req.NoError(err)
	req.Equal(map[string]int{"importante": 1}, m.Count("URGENTE!!"))
	req.Equal([]string{"importante", "trabalho"}, m.Labels())
}

func TestNormalizeRunes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "  Clique...  AQUI!! ", expected: "clique aqui"},
		{input: "Reunião\n\tsexta", expected: "reuniao sexta"},
		{input: "g4nh0u", expected: "ganhou"},
		{input: "?!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, string(normalizeRunes([]rune(tt.input))))
		})
	}
}
