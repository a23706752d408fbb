// Package server exposes the generation pipeline over HTTP for previews.
// Nothing is written to disk; generated files are returned in the response.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toyz/stratum/internal/classifier"
	"github.com/toyz/stratum/internal/generator"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/parser"
	"github.com/toyz/stratum/internal/utils"
)

// Request is the body accepted by the generate and classify endpoints
type Request struct {
	Options *models.Options  `json:"options,omitempty"` // merged over the server defaults
	Classes []map[string]any `json:"classes"`           // class descriptors in input order
}

// GenerateResponse is returned by POST /v1/generate
type GenerateResponse struct {
	RunID      string                `json:"runId"`
	Files      []models.LogicalFile  `json:"files"`
	Report     generator.Report      `json:"report"`
	Collisions []generator.Collision `json:"collisions,omitempty"`
}

// HttpError is the JSON error body of every failed request
type HttpError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *HttpError) Error() string {
	return e.Message
}

// Server wraps the echo instance serving the preview API
type Server struct {
	engine   *echo.Echo
	defaults models.Options
	logger   generator.Logger
}

// New creates a server whose requests fall back to defaults
func New(defaults models.Options, logger generator.Logger) *Server {
	if logger == nil {
		logger = generator.NopLogger{}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	s := &Server{engine: e, defaults: defaults, logger: logger}

	e.GET("/healthz", s.health)
	v1 := e.Group("/v1")
	v1.POST("/generate", s.generate)
	v1.POST("/classify", s.classify)

	return s
}

// Handler returns the underlying HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.engine.Start(addr)
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.engine.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) generate(c echo.Context) error {
	req, opts, err := s.bind(c)
	if err != nil {
		return err
	}

	s.logger.Debug("generate request with %d classes", len(req.Classes))
	result := generator.NewOrchestrator(opts, s.logger).Process(req.Classes)

	return c.JSON(http.StatusOK, GenerateResponse{
		RunID:      result.Report.RunID,
		Files:      result.Files,
		Report:     result.Report,
		Collisions: result.Collisions(),
	})
}

func (s *Server) classify(c echo.Context) error {
	req, _, err := s.bind(c)
	if err != nil {
		return err
	}

	classes, err := parser.BuildAll(req.Classes)
	if err != nil {
		return &HttpError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "malformed class descriptors",
			Details:    err.Error(),
		}
	}

	return c.JSON(http.StatusOK, classifier.Describe(classes))
}

// bind decodes the request body and merges its options over the defaults
func (s *Server) bind(c echo.Context) (*Request, models.Options, error) {
	var req Request
	if err := c.Bind(&req); err != nil {
		return nil, models.Options{}, &HttpError{StatusCode: http.StatusBadRequest, Message: "invalid request body", Details: err.Error()}
	}

	opts := s.defaults
	if req.Options != nil {
		merged, err := utils.MergeOptions(*req.Options, s.defaults)
		if err != nil {
			return nil, models.Options{}, &HttpError{StatusCode: http.StatusBadRequest, Message: "invalid options", Details: err.Error()}
		}
		opts = merged
	}

	if err := utils.ValidateOptions(opts); err != nil {
		return nil, models.Options{}, &HttpError{StatusCode: http.StatusBadRequest, Message: "invalid options", Details: err.Error()}
	}

	return &req, opts, nil
}

// errorHandler renders every error as an HttpError body
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr, ok := err.(*HttpError)
	if !ok {
		httpErr = &HttpError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
		if he, isEcho := err.(*echo.HTTPError); isEcho {
			httpErr.StatusCode = he.Code
			httpErr.Message = http.StatusText(he.Code)
			if msg, isString := he.Message.(string); isString {
				httpErr.Message = msg
			}
		}
	}

	_ = c.JSON(httpErr.StatusCode, httpErr)
}
