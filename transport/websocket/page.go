package websocket

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed console.html
var templatesFS embed.FS

type PageData struct {
	Title         string
	WebsocketPath string
}

// pageHandler serves the console page rendered once at startup.
type pageHandler struct {
	body []byte
}

func newPageHandler(title, websocketPath string) (*pageHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "console.html")
	if err != nil {
		return nil, fmt.Errorf("parse console page: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PageData{Title: title, WebsocketPath: websocketPath}); err != nil {
		return nil, fmt.Errorf("render console page: %w", err)
	}
	return &pageHandler{body: buf.Bytes()}, nil
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.body)
}
