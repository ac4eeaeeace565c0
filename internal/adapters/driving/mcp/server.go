package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/chainguide-labs/chainguide-cli/internal/core/services"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Options is the immutable server configuration, constructed once at
// startup and passed in by parameter. The server never reads ambient
// state (env vars, globals) after construction.
type Options struct {
	// Version overrides the advertised server version. Empty means Version.
	Version string

	// HTTPRateLimit is the sustained requests/second accepted by the
	// HTTP transport. Zero selects a conservative default.
	HTTPRateLimit float64

	// HTTPBurst is the burst size for the HTTP transport limiter.
	// Zero selects a default matching HTTPRateLimit.
	HTTPBurst int
}

// Default HTTP transport limits. MCP clients poll rather than stream,
// so modest limits protect a shared machine without throttling real use.
const (
	defaultHTTPRateLimit = 20.0
	defaultHTTPBurst     = 40
)

// Server is the MCP server for Chainguide.
type Server struct {
	ports    *Ports
	opts     Options
	composer *services.ResponseComposer
	server   *mcp.Server
}

// NewServer creates a new MCP server with the given ports and options.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	version := opts.Version
	if version == "" {
		version = Version
	}

	impl := &mcp.Implementation{
		Name:    "chainguide",
		Version: version,
	}

	s := &Server{
		ports:    ports,
		opts:     opts,
		composer: services.NewResponseComposer(),
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: serverInstructions,
		}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// Requests are rate limited with a shared token bucket.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.rateLimited(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// rateLimited wraps next with a token-bucket limiter. Rejected requests
// get a plain 429 so well-behaved clients back off.
func (s *Server) rateLimited(next http.Handler) http.Handler {
	limit := s.opts.HTTPRateLimit
	if limit <= 0 {
		limit = defaultHTTPRateLimit
	}
	burst := s.opts.HTTPBurst
	if burst <= 0 {
		burst = defaultHTTPBurst
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
