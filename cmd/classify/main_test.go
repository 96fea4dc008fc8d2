package main

import (
	"bytes"
	"email-classifier/domain"
	"email-classifier/stub"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	server *httptest.Server
	posts  atomic.Int32
}

func newStubService(t *testing.T) *stubService {
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	engine, err := stub.NewEngine(log)
	require.NoError(t, err)
	router := stub.NewServer(log, engine).Router()

	s := &stubService{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			s.posts.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(s.server.Close)
	return s
}

func TestRun_Text(t *testing.T) {
	req := require.New(t)
	service := newStubService(t)
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"-url", service.server.URL, "-text", "PARABÉNS! Você ganhou um prêmio, clique aqui"}, &stdout, &stderr)

	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(stdout.String(), "Spam")
	req.Contains(stdout.String(), "95%")
	req.Equal(int32(1), service.posts.Load())
}

func TestRun_File(t *testing.T) {
	req := require.New(t)
	service := newStubService(t)
	path := filepath.Join(t.TempDir(), "email.txt")
	req.NoError(os.WriteFile(path, []byte("A reunião do projeto foi confirmada."), 0o600))
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"-url", service.server.URL, "-file", path}, &stdout, &stderr)

	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(stdout.String(), "Trabalho")
}

func TestRun_RejectedLocally(t *testing.T) {
	tests := []struct {
		description string
		content     []byte
		filename    string
		message     string
	}{
		{"Should reject a 12MB file", bytes.Repeat([]byte("a"), 12*domain.MB), "big.txt", "Arquivo muito grande"},
		{"Should reject a non-txt file", []byte("oi"), "email.md", "Apenas arquivos .txt"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			service := newStubService(t)
			path := filepath.Join(t.TempDir(), tt.filename)
			req.NoError(os.WriteFile(path, tt.content, 0o600))
			var stdout, stderr bytes.Buffer

			code, err := run([]string{"-url", service.server.URL, "-file", path}, &stdout, &stderr)

			req.NoError(err)
			req.Equal(exitFailed, code)
			req.Contains(stderr.String(), tt.message)
			req.Zero(service.posts.Load())
		})
	}
}

func TestRun_ConnectionError(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"-url", url, "-text", "Reunião amanhã"}, &stdout, &stderr)

	req.NoError(err)
	req.Equal(exitFailed, code)
	req.Contains(stderr.String(), "Erro de conexão")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-text", "a", "-sample"},
		{"-url", "::not-a-url::", "-text", "a"},
	} {
		var stdout, stderr bytes.Buffer
		code, err := run(args, &stdout, &stderr)
		require.Error(t, err, "args=%v", args)
		require.Equal(t, exitUsage, code)
	}
}
