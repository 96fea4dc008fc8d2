package e2e

import (
	"context"
	"email-classifier/client"
	"email-classifier/domain"
	"email-classifier/services"
	"email-classifier/stub"
	"email-classifier/ui"
	"email-classifier/validation"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config

	stub  *httptest.Server
	posts atomic.Int32
}

// SetupSuite loads the environment configuration and starts the stub
// service when no external one is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ClassifierURL != "" {
		return
	}
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	engine, err := stub.NewEngine(log)
	s.Require().NoError(err)
	router := stub.NewServer(log, engine).Router()
	s.stub = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			s.posts.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	s.Config.ClassifierURL = s.stub.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.stub != nil {
		s.stub.Close()
	}
}

// Posts counts the requests that reached the stub. It is always zero
// against an external service.
func (s *BaseHTTPSuite) Posts() int32 {
	return s.posts.Load()
}

// Session wires a fresh page and submission service to the target service.
type Session struct {
	Page    *ui.Page
	Service *services.SubmissionService
}

// WithSession prints a colorized step header and runs fn against a new session.
func (s *BaseHTTPSuite) WithSession(name string, url string, fn func(ctx context.Context, session Session)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	classifier, err := client.NewHTTPClassifier(log, url, 5*time.Second)
	s.Require().NoError(err, "Failed to build classifier for "+url)

	validator := validation.NewValidator()
	page := ui.NewPage(log, validator)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, Session{Page: page, Service: services.NewSubmissionService(log, classifier, validator, page)})

	if s.Config.DebugJSON {
		if result, ok := page.Results.Current(); ok {
			body, _ := json.MarshalIndent(result, "", "  ")
			s.T().Log("RESULT:\n" + string(body))
		}
		s.T().Logf("VIEW: %+v", page.View.Snapshot())
	}
}

func textFile(name string, content []byte) domain.File {
	return domain.FileFromBytes(name, "text/plain", content, domain.Picked)
}
