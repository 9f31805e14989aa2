package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ktgenius/learning-assistant/internal/models"
	"go.uber.org/zap"
)

// ChatService is the interface that wraps methods for chat turn processing
type ChatService interface {
	// HandleTurn processes one chat turn and returns the assistant reply
	//
	// "ctx" is the context for the request.
	// "userID" is the optional employee ID of the learner.
	// "message" is the user's message for this turn.
	// "history" is the caller-owned transcript of earlier turns.
	//
	// Always returns user-facing text; failures degrade to explanatory messages.
	HandleTurn(ctx context.Context, userID, message string, history []models.ChatMessage) string
	// Greet looks up a learner and returns a greeting
	//
	// "ctx" is the context for the request.
	// "userID" is the employee ID of the learner.
	//
	// Always returns user-facing text; failures degrade to explanatory messages.
	Greet(ctx context.Context, userID string) string
}

// ChatHandler handles HTTP requests for the chat assistant
type ChatHandler struct {
	BaseHandler
	service ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(svc ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all chat handler routes
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", h.HandleTurn)
		r.Get("/users/{userID}/greeting", h.Greet)
	})
}

// HandleTurn handles POST /api/v1/chat
// @Summary Process one chat turn
// @Description Route a user message to the course recommender or the language-model fallback and return the assistant reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Turn: optional user ID, message, and prior transcript"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.service.HandleTurn(r.Context(), req.UserID, req.Message, req.History)
	h.respondJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// Greet handles GET /api/v1/users/{userID}/greeting
// @Summary Greet a learner
// @Description Look up a learner by employee ID and return a greeting message
// @Tags chat
// @Accept json
// @Produce json
// @Param userID path string true "Employee ID"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /users/{userID}/greeting [get]
func (h *ChatHandler) Greet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "userID is required")
		return
	}

	greeting := h.service.Greet(r.Context(), userID)
	h.respondJSON(w, http.StatusOK, models.ChatResponse{Reply: greeting})
}
