package internal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"hashlens/unhash"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Column     int
	Collisions []unhash.Collision
}

type RowsProvider func(grep string) []InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Grep  string
	Items []InspectRow
	Stats map[string]any
}

// NewInspectHandler serves an HTML page listing the rows matching the "grep" query parameter.
func NewInspectHandler(endpoint string, rows RowsProvider, statsProvider StatsProvider) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		grep := r.URL.Query().Get("grep")
		data := PageData{
			Grep:  grep,
			Items: rows(grep),
			Stats: make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
	return mux
}

// ServeInspect listens on port until ctx is cancelled.
func ServeInspect(ctx context.Context, log *slog.Logger, port int, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	log.Info("Inspect server started", "url", fmt.Sprintf("http://localhost:%d/inspect", port))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("Stopping inspect server...")
		return server.Shutdown(shutdownCtx)
	}
}
