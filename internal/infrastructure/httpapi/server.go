package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"task-agent/internal/application/port/input"
	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

const maxBodyBytes = 1 << 20

// Server exposes the assistant over HTTP. Threads live in memory, keyed by
// ID; the remote database owns the durable task state.
type Server struct {
	assistant input.Assistant
	logger    output.LoggerPort

	mu      sync.Mutex
	threads map[string]*threadSession
}

// threadSession serializes turns on one thread; Respond mutates the thread
// history in place.
type threadSession struct {
	sync.Mutex
	thread *entity.Thread
}

func NewServer(assistant input.Assistant, logger output.LoggerPort) *Server {
	return &Server{
		assistant: assistant,
		logger:    logger,
		threads:   make(map[string]*threadSession),
	}
}

func (s *Server) Handler() http.Handler {
	requestLogger := httplog.NewLogger("task-agent", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httplog.RequestLogger(requestLogger))

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/chat", s.handleChat)
	r.Get("/v1/threads/{threadID}", s.handleGetThread)

	return r
}

type chatRequest struct {
	ThreadID string `json:"threadId,omitempty"`
	TenantID string `json:"tenantId"`
	UserID   string `json:"userId"`
	PersonID string `json:"personId,omitempty"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	switch {
	case req.TenantID == "":
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tenantId is required"})
		return
	case req.UserID == "":
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "userId is required"})
		return
	case req.Message == "":
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	session, ok := s.findOrCreateSession(req.ThreadID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "thread not found"})
		return
	}

	ctx := entity.WithTurnContext(r.Context(), entity.TurnContext{
		TenantID: req.TenantID,
		UserID:   req.UserID,
		PersonID: req.PersonID,
	})

	session.Lock()
	resp, err := s.assistant.Respond(ctx, session.thread, req.Message)
	session.Unlock()
	if err != nil {
		s.logger.Error("Turn failed", "thread", session.thread.ID, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

type threadResponse struct {
	ID         string           `json:"id"`
	Title      string           `json:"title,omitempty"`
	LastTaskID string           `json:"lastTaskId,omitempty"`
	Messages   []threadExchange `json:"messages"`
}

type threadExchange struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	threadID := chi.URLParam(r, "threadID")

	s.mu.Lock()
	session, ok := s.threads[threadID]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "thread not found"})
		return
	}

	session.Lock()
	defer session.Unlock()
	thread := session.thread

	resp := threadResponse{
		ID:         thread.ID,
		Title:      thread.Title,
		LastTaskID: thread.LastTaskID,
		Messages:   make([]threadExchange, 0, len(thread.Messages)),
	}
	for _, msg := range thread.Messages {
		resp.Messages = append(resp.Messages, threadExchange{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// findOrCreateSession returns the session for the given thread ID, a fresh one
// when the ID is empty, and ok=false when an explicit ID is unknown.
func (s *Server) findOrCreateSession(threadID string) (*threadSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if threadID == "" {
		session := &threadSession{thread: entity.NewThread()}
		s.threads[session.thread.ID] = session
		return session, true
	}

	session, ok := s.threads[threadID]
	return session, ok
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
