// Package server exposes the rendered document over local HTTP so the
// portfolio can be previewed in a browser while the source is edited.
package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"showcase/internal/catalog"
	"showcase/internal/constants"
	"showcase/internal/logger"
	"showcase/internal/render"
)

// Server renders the catalog per request. When a reload fails the last
// good catalog keeps serving and the error is reported once per request.
type Server struct {
	sourcePath string
	baseDir    string
	renderer   *render.Renderer

	mu   sync.RWMutex
	last *catalog.Catalog
}

// New returns a preview server for the given source file. baseDir is the
// directory image paths resolve against, normally the output directory.
func New(sourcePath, baseDir string, r *render.Renderer) *Server {
	return &Server{
		sourcePath: sourcePath,
		baseDir:    baseDir,
		renderer:   r,
	}
}

// Routes builds the HTTP handler: the rendered page at /, raw markdown at
// /README.md, and copied images under /images/.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/README.md", s.handleMarkdown)

	imagesDir := filepath.Join(s.baseDir, constants.ImagesDirName)
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Notice(ctx, "Preview available at {{_URL_}}http://%s/{{|-|}}", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// load reloads the catalog from the source, falling back to the last good
// catalog on error.
func (s *Server) load(ctx context.Context) (*catalog.Catalog, error) {
	c, err := catalog.Load(s.sourcePath)
	if err != nil {
		s.mu.RLock()
		last := s.last
		s.mu.RUnlock()
		if last != nil {
			logger.Error(ctx, "Reload failed, serving last good catalog: %v", err)
			return last, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.last = c
	s.mu.Unlock()
	return c, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c, err := s.load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page, err := s.renderer.RenderHTML(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	c, err := s.load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(s.renderer.Render(c)))
}
