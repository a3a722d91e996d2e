// Package httpapi exposes a segment display to a host dispatcher over HTTP.
package httpapi

import (
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/BeatGlow/segment"
	"github.com/BeatGlow/segment/preview"
)

// maxBody bounds the raw value read from a request.
const maxBody = 64

// Handler serializes all requests onto one display.
type Handler struct {
	mu      sync.Mutex
	display segment.Display
	caption string
}

// New returns a handler driving d. The caption labels preview images.
func New(d segment.Display, caption string) *Handler {
	return &Handler{display: d, caption: caption}
}

// Router returns the API routes:
//
//	PUT  /set/{id}      body is the raw value
//	GET  /buffer        shadow buffer as a JSON array
//	GET  /preview.png   rendered display
//	GET  /preview.txt   ASCII art display
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/set/{id:-?[0-9]+}", h.set).Methods("PUT", "POST")
	r.HandleFunc("/buffer", h.buffer).Methods("GET")
	r.HandleFunc("/preview.png", h.previewPNG).Methods("GET")
	r.HandleFunc("/preview.txt", h.previewText).Methods("GET")
	return r
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 16)
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.Set(int16(id), string(raw)); err != nil {
		log.Printf("httpapi: set %d: %v", id, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Set forwards a host message to the display.
func (h *Handler) Set(messageID int16, raw string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.display.Set(messageID, raw)
}

// Patterns returns a copy of the display buffer.
func (h *Handler) Patterns() []segment.Pattern {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.display.Patterns()
}

func (h *Handler) buffer(w http.ResponseWriter, r *http.Request) {
	patterns := h.Patterns()
	out := make([]uint8, len(patterns))
	for i, p := range patterns {
		out[i] = uint8(p)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("httpapi: buffer: %v", err)
	}
}

func (h *Handler) previewPNG(w http.ResponseWriter, r *http.Request) {
	img := preview.Render(h.Patterns(), h.caption)
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("httpapi: preview: %v", err)
	}
}

func (h *Handler) previewText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, preview.Text(h.Patterns())+"\n")
}
