package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// linkBridge is what the HTTP API needs from the bridge.
type linkBridge interface {
	Enqueue(payload []byte) error
	Status() Status
}

// Server handles incoming HTTP requests for the bridged WiFi link
type Server struct {
	Logger *slog.Logger
	Bridge linkBridge
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send", s.handleSend)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.ServeHTTP(w, r)
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	resp := ErrorResponse{Message: message}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// handleSend queues a payload for link 0. The payload is text unless
// encoding is "base64".
func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	type SendRequest struct {
		Payload  string `json:"payload"`
		Encoding string `json:"encoding"`
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Payload == "" {
		s.sendError(w, "'payload' field is required", http.StatusBadRequest)
		return
	}

	payload := []byte(req.Payload)
	switch req.Encoding {
	case "", "text":
	case "base64":
		decoded, err := base64.StdEncoding.DecodeString(req.Payload)
		if err != nil {
			s.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		payload = decoded
	default:
		s.sendError(w, "'encoding' must be text or base64", http.StatusBadRequest)
		return
	}

	if err := s.Bridge.Enqueue(payload); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrOutboxFull) {
			status = http.StatusServiceUnavailable
		}
		s.Logger.Warn("Failed to queue payload", "error", err, "length", len(payload))
		s.sendError(w, err.Error(), status)
		return
	}

	s.Logger.Info("Payload queued", "length", len(payload))
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Bridge.Status()); err != nil {
		s.Logger.Error("Failed to encode status", "error", err)
	}
}
