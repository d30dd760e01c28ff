package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rebrickable/lookup/internal/client"
	"rebrickable/lookup/internal/config"
	"rebrickable/lookup/internal/render"
	"rebrickable/lookup/internal/service"

	log "github.com/sirupsen/logrus"
)

// Lookuper is the part of the lookup service the web handler needs.
type Lookuper interface {
	Lookup(ctx context.Context, partNum string) (*service.Result, error)
}

type Server struct {
	config   config.ServerConfig
	lookuper Lookuper // nil when no API key is configured
}

func New(cfg config.ServerConfig, lookuper Lookuper) *Server {
	return &Server{
		config:   cfg,
		lookuper: lookuper,
	}
}

// Handler serves the lookup form on GET /. Lookup failures render as an
// in-page error, never as a non-200 response.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLookup)
	return mux
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	partNum := strings.TrimSpace(r.URL.Query().Get("part_num"))

	var content template.HTML
	if partNum != "" {
		content = s.lookupContent(r.Context(), partNum)
	}

	page, err := render.Page(partNum, content)
	if err != nil {
		log.Errorf("Failed to render page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	body := []byte(page)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) lookupContent(ctx context.Context, partNum string) template.HTML {
	if s.lookuper == nil {
		return render.MissingKeyMessage()
	}

	result, err := s.lookuper.Lookup(ctx, partNum)
	if err != nil {
		log.Warnf("Lookup failed for part %s: %v", partNum, err)
		detail := err.Error()
		var tlsErr *client.TLSVerificationError
		if errors.As(err, &tlsErr) {
			detail = client.TLSFixHint()
		}
		return render.ErrorMessage(detail)
	}

	return render.PartTable(result.Part, result.Colors)
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("🚀 Serving on http://%s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("🛑 Shutting down server...")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
