package daemonruntime

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/quailyquaily/cronsay/internal/records"
)

const defaultMaxExpressionChars = 512

type DescribeFunc func(ctx context.Context, expression string) (records.Record, error)

type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string {
	return strings.TrimSpace(e.msg)
}

func BadRequest(msg string) error {
	return badRequestError{msg: msg}
}

func badRequestMessage(err error) (string, bool) {
	var reqErr badRequestError
	if errors.As(err, &reqErr) {
		return strings.TrimSpace(reqErr.msg), true
	}
	return "", false
}

type RoutesOptions struct {
	Mode string
	// AuthToken enables bearer auth on /describe and /history when set.
	AuthToken          string
	History            HistoryReader
	Describe           DescribeFunc
	HealthEnabled      bool
	MaxExpressionChars int
}

func RegisterRoutes(mux *http.ServeMux, opts RoutesOptions) {
	if mux == nil {
		return
	}
	mode := strings.TrimSpace(opts.Mode)
	authToken := strings.TrimSpace(opts.AuthToken)
	history := opts.History
	describe := opts.Describe
	maxChars := opts.MaxExpressionChars
	if maxChars <= 0 {
		maxChars = defaultMaxExpressionChars
	}

	if opts.HealthEnabled {
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead:
			default:
				w.Header().Set("Allow", "GET, HEAD")
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			payload := map[string]any{
				"ok":   true,
				"time": time.Now().Format(time.RFC3339Nano),
			}
			if mode != "" {
				payload["mode"] = mode
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodHead {
				return
			}
			_ = json.NewEncoder(w).Encode(payload)
		})
	}

	mux.HandleFunc("/describe", func(w http.ResponseWriter, r *http.Request) {
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if describe == nil {
			http.Error(w, "describer is unavailable", http.StatusServiceUnavailable)
			return
		}
		var expr string
		switch r.Method {
		case http.MethodGet:
			expr = r.URL.Query().Get("expr")
			if strings.TrimSpace(expr) == "" {
				expr = r.URL.Query().Get("expression")
			}
		case http.MethodPost:
			var req DescribeRequest
			if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			expr = req.Expression
		default:
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		expr = strings.TrimSpace(expr)
		if expr == "" {
			http.Error(w, "missing expression", http.StatusBadRequest)
			return
		}
		if len([]rune(expr)) > maxChars {
			http.Error(w, "expression too long", http.StatusBadRequest)
			return
		}

		rec, err := describe(r.Context(), expr)
		if err != nil {
			if msg, ok := badRequestMessage(err); ok {
				http.Error(w, msg, http.StatusBadRequest)
				return
			}
			http.Error(w, strings.TrimSpace(err.Error()), http.StatusServiceUnavailable)
			return
		}
		status := http.StatusOK
		if rec.Failed() {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, rec)
	})

	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if history == nil {
			http.Error(w, "history is unavailable", http.StatusServiceUnavailable)
			return
		}
		status, ok := ParseRecordStatus(r.URL.Query().Get("status"))
		if !ok {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		limit := defaultListLimit
		if rawLimit := strings.TrimSpace(r.URL.Query().Get("limit")); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": history.List(status, limit)})
	})

	mux.HandleFunc("/history/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if history == nil {
			http.Error(w, "history is unavailable", http.StatusServiceUnavailable)
			return
		}
		id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/history/"))
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		rec, ok := history.Get(id)
		if !ok || rec == nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})
}

type ServerOptions struct {
	Listen string
	Routes RoutesOptions
}

// StartServer listens immediately and serves in the background until ctx
// is done.
func StartServer(ctx context.Context, logger *slog.Logger, opts ServerOptions) (*http.Server, net.Addr, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	listen := strings.TrimSpace(opts.Listen)
	if listen == "" {
		return nil, nil, errors.New("empty serve listen address")
	}

	mux := http.NewServeMux()
	RegisterRoutes(mux, opts.Routes)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte("ok\n"))
	})

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve_error", "addr", listen, "error", err.Error())
		}
	}()

	logger.Info("serve_start",
		"addr", ln.Addr().String(),
		"mode", strings.TrimSpace(opts.Routes.Mode),
		"health_enabled", opts.Routes.HealthEnabled,
		"auth", strings.TrimSpace(opts.Routes.AuthToken) != "",
	)
	return srv, ln.Addr(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func checkAuth(r *http.Request, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return true
	}
	got := strings.TrimSpace(r.Header.Get("Authorization"))
	want := "Bearer " + token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
