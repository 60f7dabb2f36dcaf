package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	httpadapter "svw.info/sudoku-wfc/internal/adapters/http"
	"svw.info/sudoku-wfc/internal/hint"
	"svw.info/sudoku-wfc/internal/infrastructure/storage"
	"svw.info/sudoku-wfc/internal/ports"
	"svw.info/sudoku-wfc/internal/solver"
	"svw.info/sudoku-wfc/internal/usecase"
	"svw.info/sudoku-wfc/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	storeKind := flag.String("storage", "fs", "puzzle storage: fs|sqlite")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*storeKind)) {
	case "sqlite":
		db, err := storage.NewSQLite(filepath.Join(*persist, "puzzles.db"))
		if err != nil {
			logger.Error("open sqlite storage", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		st = db
	default:
		st = storage.NewFS(*persist)
	}

	// Wire providers → use cases → HTTP adapter
	s := solver.NewWFC()
	v := validator.New()
	hin := hint.NewSingles()
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "storage", *storeKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
