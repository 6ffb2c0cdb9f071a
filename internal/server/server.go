// Package server exposes a running check over HTTP: Prometheus metrics, a
// health check, the state of the run and a one-shot multiplication endpoint.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/limb"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/metrics"
	"github.com/agbru/mulcheck/internal/mpmul"
	"github.com/agbru/mulcheck/internal/oracle"
)

// Timeouts of the HTTP server.
const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 10 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// Status is the body of /status.
type Status struct {
	State    string  `json:"state"`
	Suites   int     `json:"suites"`
	Vectors  int     `json:"vectors"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Success  float64 `json:"success_rate"`
	Duration string  `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// MultiplyResponse is the body of /multiply.
type MultiplyResponse struct {
	Width    int    `json:"width"`
	Strategy string `json:"strategy"`
	Product  string `json:"product"`
	Verified bool   `json:"verified"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurity replaces DefaultSecurityConfig.
func WithSecurity(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// Server serves the HTTP endpoints of one run.
type Server struct {
	addr     string
	metrics  *metrics.Metrics
	oracle   oracle.Oracle
	logger   logging.Logger
	security SecurityConfig

	mu     sync.RWMutex
	status Status

	httpServer *http.Server
	listener   net.Listener
}

// New creates a server for addr. m may be nil, in which case /metrics is not
// registered.
func New(addr string, m *metrics.Metrics, o oracle.Oracle, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		metrics:  m,
		oracle:   o,
		logger:   logging.NopLogger{},
		security: DefaultSecurityConfig(),
		status:   Status{State: "idle"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}
	return s
}

// Handler returns the routed handler, wrapped in the security middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.handleHealth))
	mux.HandleFunc("/status", SecurityMiddleware(s.security, s.handleStatus))
	mux.HandleFunc("/multiply", SecurityMiddleware(s.security, s.handleMultiply))
	if s.metrics != nil {
		mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metrics.WritePrometheus))
	}
	return mux
}

// Start binds the address and serves in the background. Bind errors are
// returned directly.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return apperrors.WrapError(err, "listen on %s", s.addr)
	}
	s.listener = ln
	s.logger.Info("http server listening", logging.String("addr", ln.Addr().String()))
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Running marks a run of suites as started.
func (s *Server) Running(suites []harness.Suite) {
	vectors := 0
	for _, su := range suites {
		vectors += len(su.Vectors)
	}
	s.mu.Lock()
	s.status = Status{State: "running", Suites: len(suites), Vectors: vectors}
	s.mu.Unlock()
}

// Finished publishes the final report.
func (s *Server) Finished(report harness.Report) {
	t := report.Totals()
	st := Status{
		State:    "done",
		Suites:   len(report.Suites),
		Vectors:  t.Total,
		Passed:   t.Passed,
		Failed:   t.Failed,
		Success:  report.SuccessRate(),
		Duration: report.Duration.String(),
	}
	if err := report.Err(); err != nil {
		st.Error = err.Error()
	}
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.RLock()
	st := s.status
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, st)
}

// handleMultiply answers GET /multiply?width=N&a=HEX&b=HEX[&strategy=name]
// with the 2N-limb product, checked against the oracle.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	n, err := strconv.Atoi(q.Get("width"))
	if err != nil || n < 1 || n > s.security.MaxWidth {
		http.Error(w, fmt.Sprintf("width must be an integer in [1, %d]", s.security.MaxWidth), http.StatusBadRequest)
		return
	}
	a, errA := parseOperand(q.Get("a"), n)
	b, errB := parseOperand(q.Get("b"), n)
	if err := errors.Join(errA, errB); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	strategy := mpmul.Auto(n)
	if name := q.Get("strategy"); name != "" {
		if strategy, err = mpmul.Lookup(name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	out := make([]limb.Word, 2*n)
	if err := mpmul.Multiply(strategy, a, b, out); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	want := s.oracle.Mul(oracle.ToBig(a), oracle.ToBig(b))
	verified := oracle.ToBig(out).Cmp(want) == 0
	if !verified {
		s.logger.Error("multiply endpoint disagrees with oracle", nil,
			logging.String("strategy", strategy.Name()), logging.Int("width", n))
	}

	writeJSON(w, http.StatusOK, MultiplyResponse{
		Width:    n,
		Strategy: strategy.Name(),
		Product:  apperrors.FormatLimbs(out),
		Verified: verified,
	})
}

// parseOperand reads a hex number, with optional 0x prefix and _ separators,
// into n limbs.
func parseOperand(s string, n int) ([]limb.Word, error) {
	clean := strings.ReplaceAll(strings.TrimPrefix(strings.ToLower(s), "0x"), "_", "")
	if clean == "" {
		return nil, errors.New("missing operand")
	}
	x, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex operand %q", s)
	}
	return oracle.FromBig(x, n)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
