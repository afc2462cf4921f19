// Package server exposes an Engine as a small JSON HTTP API.
//
//	POST /api/tag       body: {"text":"..."}
//	POST /api/tokenize  body: {"text":"..."}
//	GET  /api/healthz
package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"

	"postag/internal/common"
	"postag/internal/engine"
)

const maxBodyBytes = 4 << 20

type textRequest struct {
	Text string `json:"text"`
}

type tokenizeResponse struct {
	Split []bool   `json:"split"`
	Terms []string `json:"terms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the API mux wrapped in a CORS policy for origins.
func Handler(e *engine.Engine, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tag", handleTag(e))
	mux.HandleFunc("/api/tokenize", handleTokenize(e))
	mux.HandleFunc("/api/healthz", handleHealth(e))

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func handleTag(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := readText(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, e.Process(req.Text))
	}
}

func handleTokenize(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := readText(w, r)
		if !ok {
			return
		}
		split, terms := e.Tokenize(req.Text)
		writeJSON(w, http.StatusOK, tokenizeResponse{Split: split, Terms: terms})
	}
}

func handleHealth(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "engine": e.String()})
	}
}

func readText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return req, false
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		common.WARN("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
