package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/companion/pkg/domain"
	"github.com/umputun/companion/pkg/persona"
	"github.com/umputun/companion/pkg/repository"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// userRequest is the payload for user create and update
type userRequest struct {
	TelegramID       int64  `json:"telegram_id,omitempty"`
	Name             string `json:"name"`
	Archetype        string `json:"archetype"`
	BotName          string `json:"bot_name"`
	AttachmentStyle  string `json:"attachment_style"`
	Tier             string `json:"tier"`
	Timezone         string `json:"timezone"`
	ProactiveEnabled *bool  `json:"proactive_enabled"`
}

type userResponse struct {
	ID                  int64     `json:"id"`
	TelegramID          int64     `json:"telegram_id,omitempty"`
	Name                string    `json:"name"`
	Archetype           string    `json:"archetype"`
	BotName             string    `json:"bot_name"`
	AttachmentStyle     string    `json:"attachment_style"`
	Tier                string    `json:"tier"`
	Timezone            string    `json:"timezone"`
	ProactiveEnabled    bool      `json:"proactive_enabled"`
	ProactiveCountToday int       `json:"proactive_count_today"`
	MessagesToday       int       `json:"messages_today"`
	CreatedAt           time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                  u.ID,
		TelegramID:          u.TelegramID,
		Name:                u.Name,
		Archetype:           u.Archetype,
		BotName:             u.BotName,
		AttachmentStyle:     string(u.AttachmentStyle),
		Tier:                string(u.Tier),
		Timezone:            u.Timezone,
		ProactiveEnabled:    u.ProactiveEnabled,
		ProactiveCountToday: u.ProactiveCountToday,
		MessagesToday:       u.MessagesToday,
		CreatedAt:           u.CreatedAt,
	}
}

// createUserHandler registers a new user
func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if err := validateUserRequest(&req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user := &domain.User{
		TelegramID:       req.TelegramID,
		Name:             req.Name,
		Archetype:        persona.DefaultArchetype,
		BotName:          "Dot",
		AttachmentStyle:  domain.AttachmentSecure,
		Tier:             domain.TierFree,
		Timezone:         "UTC",
		ProactiveEnabled: true,
	}
	applyUserRequest(user, &req)

	if err := s.users.Create(ctx, user); err != nil {
		log.Printf("[ERROR] failed to create user: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, toUserResponse(user))
}

// getUserHandler returns a single user
func (s *Server) getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, toUserResponse(user))
}

// updateUserHandler changes user settings, only the provided fields
func (s *Server) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	user, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if err := validateUserRequest(&req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	applyUserRequest(user, &req)

	if err := s.users.Update(ctx, user); err != nil {
		log.Printf("[ERROR] failed to update user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, toUserResponse(user))
}

func validateUserRequest(req *userRequest) error {
	if req.Archetype != "" && !persona.Valid(req.Archetype) {
		return fmt.Errorf("unknown archetype %q", req.Archetype)
	}
	if req.AttachmentStyle != "" && !validAttachment(req.AttachmentStyle) {
		return fmt.Errorf("unknown attachment style %q", req.AttachmentStyle)
	}
	if req.Tier != "" && !validTier(req.Tier) {
		return fmt.Errorf("unknown tier %q", req.Tier)
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", req.Timezone)
		}
	}
	return nil
}

func applyUserRequest(user *domain.User, req *userRequest) {
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Archetype != "" {
		user.Archetype = req.Archetype
	}
	if req.BotName != "" {
		user.BotName = req.BotName
	}
	if req.AttachmentStyle != "" {
		user.AttachmentStyle = domain.AttachmentStyle(req.AttachmentStyle)
	}
	if req.Tier != "" {
		user.Tier = domain.Tier(req.Tier)
	}
	if req.Timezone != "" {
		user.Timezone = req.Timezone
	}
	if req.ProactiveEnabled != nil {
		user.ProactiveEnabled = *req.ProactiveEnabled
	}
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// messageHandler runs an inbound message through the reactive pipeline
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	if !s.limiters.allow(id) {
		renderError(w, r, fmt.Errorf("too many messages, slow down"), http.StatusTooManyRequests)
		return
	}

	user, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		renderError(w, r, fmt.Errorf("message is required"), http.StatusBadRequest)
		return
	}
	if len(req.Message) > s.maxMessageLen {
		renderError(w, r, fmt.Errorf("message too long, %d bytes max", s.maxMessageLen), http.StatusBadRequest)
		return
	}
	if s.limiters.duplicate(id, req.Message) {
		renderError(w, r, fmt.Errorf("duplicate message ignored"), http.StatusTooManyRequests)
		return
	}

	reply, err := s.processor.ProcessMessage(ctx, user, req.Message)
	if err != nil && reply == "" {
		log.Printf("[ERROR] failed to process message for user %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to process message"), http.StatusInternalServerError)
		return
	}
	if err != nil {
		// pipeline degraded to a fallback phrase, deliver it anyway
		log.Printf("[WARN] degraded reply for user %d: %v", id, err)
	}
	if reply == "" {
		// the pipeline produces nothing only when the message sanitized to nothing
		renderError(w, r, fmt.Errorf("message has no usable text"), http.StatusBadRequest)
		return
	}

	renderJSON(w, r, http.StatusOK, messageResponse{Reply: reply})
}

// moodsHandler returns the user's recent mood history, newest first
func (s *Server) moodsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	moods, err := s.turns.RecentMoods(r.Context(), id, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get moods for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"moods": moods})
}

type proactivePreviewResponse struct {
	Allowed  bool   `json:"allowed"`
	Gate     string `json:"gate,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Text     string `json:"text,omitempty"`
	Category string `json:"category,omitempty"`
}

// proactivePreviewHandler runs the proactive gates for a user without
// sending or recording anything
func (s *Server) proactivePreviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	user, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	result, err := s.evaluator.Generate(ctx, user)
	if err != nil {
		log.Printf("[ERROR] proactive preview failed for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, proactivePreviewResponse{
		Allowed:  result.Decision.Allowed,
		Gate:     string(result.Decision.Gate),
		Reason:   result.Decision.Reason,
		Detail:   result.Decision.Detail,
		Text:     result.Text,
		Category: result.Category,
	})
}

type boundaryRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type boundaryResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// listBoundariesHandler returns all boundaries for a user, newest first
func (s *Server) listBoundariesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	boundaries, err := s.boundaries.ListForUser(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to list boundaries for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := make([]boundaryResponse, 0, len(boundaries))
	for _, b := range boundaries {
		resp = append(resp, boundaryResponse{
			ID:        b.ID,
			Type:      string(b.Type),
			Value:     b.Value,
			Active:    b.Active,
			CreatedAt: b.CreatedAt,
		})
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"boundaries": resp})
}

// createBoundaryHandler adds an explicit boundary for a user
func (s *Server) createBoundaryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	var req boundaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	req.Value = strings.TrimSpace(strings.ToLower(req.Value))
	if req.Value == "" {
		renderError(w, r, fmt.Errorf("boundary value is required"), http.StatusBadRequest)
		return
	}
	if !validBoundaryType(req.Type) {
		renderError(w, r, fmt.Errorf("unknown boundary type %q", req.Type), http.StatusBadRequest)
		return
	}

	exists, err := s.boundaries.ExistsActive(ctx, id, domain.BoundaryType(req.Type), req.Value)
	if err != nil {
		log.Printf("[ERROR] failed to check boundary for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if exists {
		renderError(w, r, fmt.Errorf("boundary already set"), http.StatusConflict)
		return
	}

	boundary := domain.Boundary{
		UserID: id,
		Type:   domain.BoundaryType(req.Type),
		Value:  req.Value,
		Active: true,
	}
	boundaryID, err := s.boundaries.Create(ctx, boundary)
	if err != nil {
		log.Printf("[ERROR] failed to create boundary for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, boundaryResponse{
		ID:     boundaryID,
		Type:   req.Type,
		Value:  req.Value,
		Active: true,
	})
}

// deleteBoundaryHandler removes a boundary owned by the user
func (s *Server) deleteBoundaryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}
	boundaryID, err := pathID(r, "bid")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid boundary ID"), http.StatusBadRequest)
		return
	}

	deleted, err := s.boundaries.Delete(r.Context(), id, boundaryID)
	if err != nil {
		log.Printf("[ERROR] failed to delete boundary %d for user %d: %v", boundaryID, id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !deleted {
		renderError(w, r, fmt.Errorf("boundary not found"), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"deleted": true})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func validAttachment(s string) bool {
	switch domain.AttachmentStyle(s) {
	case domain.AttachmentSecure, domain.AttachmentAnxious, domain.AttachmentAvoidant:
		return true
	}
	return false
}

func validTier(s string) bool {
	switch domain.Tier(s) {
	case domain.TierFree, domain.TierPlus, domain.TierPremium:
		return true
	}
	return false
}

func validBoundaryType(s string) bool {
	switch domain.BoundaryType(s) {
	case domain.BoundaryTopic, domain.BoundaryBehavior, domain.BoundaryTiming, domain.BoundaryFrequency:
		return true
	}
	return false
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
