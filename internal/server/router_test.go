package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, files map[string]string, landing string) http.Handler {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return NewRouter(dir, landing, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRouter(t *testing.T) {
	h := newTestRouter(t, map[string]string{
		"A-Index.html":       "<p>A</p>",
		"media/pic.png":      "png",
		"css/pygments/m.css": ".chroma{}",
	}, "A-Index.html")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantHeader map[string]string
	}{
		{name: "Health", path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "Page", path: "/A-Index.html", wantStatus: http.StatusOK, wantBody: "<p>A</p>"},
		{name: "Media", path: "/media/pic.png", wantStatus: http.StatusOK, wantBody: "png"},
		{name: "Missing", path: "/nope.html", wantStatus: http.StatusNotFound},
		{
			name:       "Root redirects to landing page",
			path:       "/",
			wantStatus: http.StatusFound,
			wantHeader: map[string]string{"Location": "/A-Index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			for k, v := range tt.wantHeader {
				assert.Equal(t, v, rec.Header().Get(k))
			}
		})
	}
}

func TestRouterServesIndexWhenPresent(t *testing.T) {
	h := newTestRouter(t, map[string]string{"index.html": "home"}, "A-Index.html")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home", rec.Body.String())
}
