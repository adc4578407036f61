package web

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/adarshvish/portfolio-api/internal/chat"
	"github.com/adarshvish/portfolio-api/internal/contact"
	"github.com/adarshvish/portfolio-api/internal/llm"
	"github.com/adarshvish/portfolio-api/internal/logger"
	"github.com/adarshvish/portfolio-api/internal/mailer"
	"github.com/adarshvish/portfolio-api/internal/ratelimit"
)

// Handler handles HTTP requests for the portfolio API
type Handler struct {
	mailer     *mailer.Service
	chat       *chat.Service
	limiter    *ratelimit.Limiter
	log        *logger.Logger
	production bool
}

// NewHandler creates a new handler with the given services.
// production controls whether error causes reach response bodies.
func NewHandler(m *mailer.Service, c *chat.Service, l *ratelimit.Limiter, log *logger.Logger, production bool) *Handler {
	return &Handler{
		mailer:     m,
		chat:       c,
		limiter:    l,
		log:        log.Component("web"),
		production: production,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *mailer.DeliveryResult `json:"data"`
}

type contactErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	Errors contact.FieldErrors `json:"errors,omitempty"`
}

// SendContact handles POST /api/contact
func (h *Handler) SendContact(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientKey(r)) {
		respondJSON(w, http.StatusTooManyRequests, contactErrorResponse{
			Success: false,
			Message: "too many submissions, please try again later",
		})
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, contactErrorResponse{
			Success: false,
			Message: "invalid json",
		})
		return
	}

	sub, fieldErrs := contact.ParseSubmission(req.Name, req.Email, req.Subject, req.Message)
	if fieldErrs != nil {
		respondJSON(w, http.StatusBadRequest, contactErrorResponse{
			Success: false,
			Errors:  fieldErrs,
		})
		return
	}

	result, err := h.mailer.SendContact(r.Context(), sub)
	if err != nil {
		h.respondMailError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, contactResponse{
		Success: true,
		Message: "Message sent successfully! I'll get back to you soon.",
		Data:    result,
	})
}

func (h *Handler) respondMailError(w http.ResponseWriter, err error) {
	var merr *mailer.Error
	if errors.As(err, &merr) && merr.Kind == mailer.KindNotConfigured {
		respondJSON(w, http.StatusServiceUnavailable, contactErrorResponse{
			Success: false,
			Error:   "EMAIL_SERVICE_ERROR",
			Message: "Email service is not configured. Please try again later.",
		})
		return
	}

	msg := "Failed to send message. Please try again."
	if !h.production {
		// development only, never leak transport detail to real clients
		msg = msg + " (" + err.Error() + ")"
	}
	respondJSON(w, http.StatusInternalServerError, contactErrorResponse{
		Success: false,
		Error:   "INTERNAL_SERVER_ERROR",
		Message: msg,
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"` // "model" | "local"
}

// Chat handles POST /api/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, fromModel, err := h.chat.Reply(r.Context(), req.Message)
	if err != nil {
		if llm.IsQuota(err) {
			respondError(w, http.StatusTooManyRequests, "The AI service has run out of credits. Please try again later.")
			return
		}
		h.log.Error().Err(err).Msg("chat completion failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong with the AI service.")
		return
	}

	source := "local"
	if fromModel {
		source = "model"
	}
	respondJSON(w, http.StatusOK, chatResponse{Reply: reply, Source: source})
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health handles GET /health and GET /api/contact/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	email := "connected"
	code := http.StatusOK
	if !h.mailer.Healthy() {
		status = "unhealthy"
		email = "disconnected"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, healthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  map[string]string{"email": email},
	})
}

// clientKey identifies the requester for rate limiting. RealIP middleware
// already folded X-Forwarded-For into RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
