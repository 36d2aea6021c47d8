// Package server отдаёт диалог по HTTP: поток событий в формате SSE
// плюс служебные ручки статуса и сброса.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fitbot/internal/conversation"
)

// Server HTTP-транспорт диалога
type Server struct {
	manager *conversation.Manager
	mux     *http.ServeMux
}

// New создаёт сервер и регистрирует маршруты
func New(manager *conversation.Manager) *Server {
	s := &Server{
		manager: manager,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("/workout/stream", s.handleStream)
	s.mux.HandleFunc("/workout/status", s.handleStatus)
	s.mux.HandleFunc("/workout/reset", s.handleReset)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// ServeHTTP реализует http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run запускает сервер на addr
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("server: HTTP слушает %s", addr)
	return srv.ListenAndServe()
}

// handleStream обрабатывает одну реплику и стримит события как SSE.
// Последнее событие всегда терминальное, после него соединение закрывается.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("user_id")
	text := r.URL.Query().Get("text")
	if userID == "" || text == "" {
		http.Error(w, "user_id and text are required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, err := s.manager.HandleTurn(r.Context(), userID, text)
	if err != nil {
		log.Printf("server: обработка реплики %s: %v", userID, err)
	}
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Printf("server: сериализация события: %v", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()
}

// handleStatus возвращает текущее состояние диалога клиента
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	conv, err := s.manager.Status(userID)
	if err != nil {
		log.Printf("server: статус диалога %s: %v", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if conv == nil {
		json.NewEncoder(w).Encode(map[string]any{"active": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"active":       true,
		"state":        conv.State,
		"has_template": conv.Template != nil,
	})
}

// handleReset сбрасывает диалог клиента
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	if err := s.manager.Reset(req.UserID); err != nil {
		log.Printf("server: сброс диалога %s: %v", req.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"reset": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}
