// Package service is the external-collaborator shell around the pure
// analyzer: a request/response adaptor with correlation IDs and optional
// knowledge-base overrides, the "external" surface spec.md scopes out but
// every real invocation of the analyzer needs somewhere to live.
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/chicogong/ffmpeg-lint/pkg/analyzer"
	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
)

// Request is one analysis request (§6's wire shape, "command" plus offsets).
type Request struct {
	ID           string `json:"id,omitempty"`
	Command      string `json:"command"`
	LineOffset   int    `json:"line_offset,omitempty"`
	ColumnOffset int    `json:"column_offset,omitempty"`
}

// Response carries the analysis result plus bookkeeping for the caller.
type Response struct {
	ID          string         `json:"id"`
	Diagnostics []diag.Message `json:"diagnostics"`
	DurationMS  float64        `json:"duration_ms"`
}

// Service adapts analyzer.Analyze into a request/response shape, holding
// the knowledge-base Registry used across requests. Mirrors the teacher's
// api.Server (pkg/api/handlers.go), generalized from a job store to a
// stateless registry since the analyzer itself holds no request state.
type Service struct {
	reg *kb.Registry
}

// Option configures a Service at construction time, following the
// teacher's functional-options idiom (prober.ProberOption).
type Option func(*Service)

// WithRegistry overrides the default knowledge-base registry.
func WithRegistry(reg *kb.Registry) Option {
	return func(s *Service) { s.reg = reg }
}

// New builds a Service, defaulting to the shared kb.Default() registry.
func New(opts ...Option) *Service {
	s := &Service{reg: kb.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle runs one analysis request, assigning a correlation ID when the
// caller did not supply one.
func (s *Service) Handle(req Request) Response {
	start := time.Now()

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	msgs := analyzer.Analyze(req.Command, analyzer.Options{
		LineOffset:   req.LineOffset,
		ColumnOffset: req.ColumnOffset,
		Registry:     s.reg,
	})

	return Response{
		ID:          id,
		Diagnostics: msgs,
		DurationMS:  float64(time.Since(start)) / float64(time.Millisecond),
	}
}
