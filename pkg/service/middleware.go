package service

import (
	"log"
	"time"
)

// HandlerFunc matches Service.Handle's signature, so middleware can wrap it
// the way the teacher chains http.HandlerFunc (pkg/api/middleware.go).
type HandlerFunc func(Request) Response

// LoggingMiddleware logs each request's command length and diagnostic
// count, mirroring pkg/api/middleware.go's LoggingMiddleware.
func LoggingMiddleware(next HandlerFunc) HandlerFunc {
	return func(req Request) Response {
		start := time.Now()
		resp := next(req)
		log.Printf("[analyze] id=%s chars=%d diagnostics=%d duration=%v",
			resp.ID, len(req.Command), len(resp.Diagnostics), time.Since(start))
		return resp
	}
}

// RecoveryMiddleware converts a panic inside next into an empty Response
// (the request's ID, no diagnostics) instead of crashing the caller,
// mirroring pkg/api/middleware.go's RecoveryMiddleware.
func RecoveryMiddleware(next HandlerFunc) HandlerFunc {
	return func(req Request) (resp Response) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[analyze] PANIC: %v", r)
				resp = Response{ID: req.ID}
			}
		}()
		return next(req)
	}
}

// Chain composes middlewares around handler, applied in the order given
// (first wraps outermost), mirroring pkg/api/middleware.go's Chain.
func Chain(handler HandlerFunc, middlewares ...func(HandlerFunc) HandlerFunc) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
