package internal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	unsetenv(t, "CLASSIFIER_URL", "REQUEST_TIMEOUT", "LOG_LEVEL")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("http://localhost:5000", config.ClassifierURL)
	req.Equal(30*time.Second, config.RequestTimeout)
	req.Equal("INFO", config.LogLevel)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("CLASSIFIER_URL", "https://classifier.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("https://classifier.example.com", config.ClassifierURL)
	req.Equal(5*time.Second, config.RequestTimeout)
	req.Equal("DEBUG", config.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		key, value  string
	}{
		{"Should reject a malformed url", "CLASSIFIER_URL", "not a url"},
		{"Should reject a negative timeout", "REQUEST_TIMEOUT", "-1s"},
		{"Should reject an unknown log level", "LOG_LEVEL", "VERBOSE"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			unsetenv(t, "CLASSIFIER_URL", "REQUEST_TIMEOUT", "LOG_LEVEL")
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadStubConfig(t *testing.T) {
	req := require.New(t)
	unsetenv(t, "LOG_LEVEL")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")

	config, err := LoadStubConfig()

	req.NoError(err)
	req.Equal("0.0.0.0:8080", config.Address())
}
