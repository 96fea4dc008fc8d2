package stub

import (
	"email-classifier/domain"
	"email-classifier/domain/mimetypes"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	TextField = "email_text"
	FileField = "file"

	MsgMissingText       = "Campo email_text ausente"
	MsgMissingFile       = "Nenhum arquivo enviado"
	MsgUnsupportedFormat = "Formato não suportado. Use arquivos .txt"
	MsgFileTooLarge      = "Arquivo muito grande. Máximo 10MB"
	MsgEmptyFile         = "Arquivo vazio"
	MsgUnreadableFile    = "Não foi possível ler o arquivo"
	MsgNotText           = "O arquivo não contém texto"
)

// Server exposes the Engine over the classification HTTP contract.
type Server struct {
	log    *slog.Logger
	engine *Engine
}

func NewServer(log *slog.Logger, engine *Engine) *Server {
	return &Server{log: log, engine: engine}
}

// Router returns the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.MaxMultipartMemory = domain.Upload().MaxBytes

	router.GET("/", s.Health)
	router.POST("/classify", s.ClassifyText)
	router.POST("/upload", s.Upload)
	return router
}

// Health answers the startup probe.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "time": time.Now().UTC().Format(time.RFC3339)})
}

// ClassifyText handles the text endpoint.
func (s *Server) ClassifyText(c *gin.Context) {
	text, ok := c.GetPostForm(TextField)
	if !ok {
		s.fail(c, http.StatusBadRequest, MsgMissingText)
		return
	}
	s.respond(c, s.engine.Classify(text))
}

// Upload handles the file endpoint. Only .txt files up to 10MB are accepted.
func (s *Server) Upload(c *gin.Context) {
	constraint := domain.Upload()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constraint.MaxBytes+64*domain.KB)

	header, err := c.FormFile(FileField)
	if err != nil {
		s.log.Debug("No file in upload", "error", err)
		s.fail(c, http.StatusBadRequest, MsgMissingFile)
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), constraint.AllowedExtension) {
		s.fail(c, http.StatusBadRequest, MsgUnsupportedFormat)
		return
	}
	if header.Size > constraint.MaxBytes {
		s.fail(c, http.StatusRequestEntityTooLarge, MsgFileTooLarge)
		return
	}
	if header.Size == 0 {
		s.fail(c, http.StatusBadRequest, MsgEmptyFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, MsgUnreadableFile)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, constraint.MaxBytes))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, MsgUnreadableFile)
		return
	}
	if !mimetypes.IsText(content) {
		s.log.Debug("Upload rejected", "filename", header.Filename, "detected", mimetypes.Detect(content))
		s.fail(c, http.StatusUnsupportedMediaType, MsgNotText)
		return
	}
	s.respond(c, s.engine.Classify(string(content)))
}

func (s *Server) respond(c *gin.Context, response domain.ClassificationResponse) {
	if !response.Success {
		s.fail(c, http.StatusBadRequest, response.Error)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) fail(c *gin.Context, status int, message string) {
	c.JSON(status, domain.ClassificationResponse{Success: false, Error: message})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("Request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
			"latency_ms", time.Since(start).Milliseconds())
	}
}
