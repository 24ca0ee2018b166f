package api

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/pkg/repository"
)

type ServicesHandler struct {
	repo     repository.ServiceRepo
	sessions *auth.Sessions
	audit    repository.AuditRepo
}

func NewServicesHandler(repo repository.ServiceRepo, sessions *auth.Sessions, audit repository.AuditRepo) *ServicesHandler {
	return &ServicesHandler{repo: repo, sessions: sessions, audit: audit}
}

type createServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Image       string   `json:"image"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
	Order       int      `json:"order"`
}

func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	_, authed := h.sessions.Verify(r)
	includeInactive := r.URL.Query().Get("includeInactive") == "true" && authed

	var (
		recs []models.Service
		err  error
	)
	if includeInactive {
		recs, err = h.repo.ListServices(r.Context())
	} else {
		recs, err = h.repo.ActiveServices(r.Context())
	}
	if err != nil {
		logger.Error("list services", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list services")
		return
	}
	if recs == nil {
		recs = []models.Service{}
	}

	writeJSON(w, map[string]any{"services": recs}, http.StatusOK)
}

func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	rec, err := h.repo.GetService(r.Context(), key)
	if err == nil && rec == nil {
		rec, err = h.repo.GetServiceBySlug(r.Context(), key)
	}
	if err != nil {
		logger.Error("get service", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to load service")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	if rec.Status != models.StatusActive {
		if _, authed := h.sessions.Verify(r); !authed {
			writeError(w, http.StatusNotFound, "service not found")
			return
		}
	}

	writeJSON(w, map[string]any{"service": rec}, http.StatusOK)
}

func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	details, err := validateBody(r.Context(), serviceCreateSchema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if details != nil {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	var req createServiceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	slug := models.Slugify(req.Title)
	if slug == "" {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/title": "must contain letters or digits"})
		return
	}
	if conflict := h.slugConflict(w, r, slug, ""); conflict {
		return
	}

	rec, err := h.repo.CreateService(r.Context(), &models.Service{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Icon:        req.Icon,
		Category:    req.Category,
		Features:    req.Features,
		Status:      req.Status,
		Order:       req.Order,
	})
	if err != nil {
		logger.Error("create service", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to create service")
		return
	}

	h.record(r, "create", rec.ID)
	writeJSON(w, map[string]any{"service": rec}, http.StatusCreated)
}

func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p models.ServicePatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if p.Status != nil && !models.ValidContentStatus(*p.Status) {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/status": `must be "active" or "inactive"`})
		return
	}
	if p.Title != nil {
		slug := models.Slugify(*p.Title)
		if slug == "" {
			writeErrorDetails(w, http.StatusBadRequest, "validation failed",
				map[string]string{"/title": "must contain letters or digits"})
			return
		}
		if conflict := h.slugConflict(w, r, slug, id); conflict {
			return
		}
	}

	rec, err := h.repo.UpdateService(r.Context(), id, p)
	if err != nil {
		logger.Error("update service", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	h.record(r, "update", rec.ID)
	writeJSON(w, map[string]any{"service": rec}, http.StatusOK)
}

func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.repo.DeleteService(r.Context(), id)
	if err != nil {
		logger.Error("delete service", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	h.record(r, "delete", id)
	writeJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

func (h *ServicesHandler) slugConflict(w http.ResponseWriter, r *http.Request, slug, selfID string) bool {
	existing, err := h.repo.GetServiceBySlug(r.Context(), slug)
	if err != nil {
		logger.Error("check service slug", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to check slug")
		return true
	}
	if existing != nil && existing.ID != selfID {
		writeErrorDetails(w, http.StatusBadRequest, "slug conflict",
			map[string]string{"slug": slug})
		return true
	}

	return false
}

func (h *ServicesHandler) record(r *http.Request, action, id string) {
	actor := "unknown"
	if identity, ok := identityFrom(r); ok {
		actor = identity.Email
	}
	_ = h.audit.Record(r.Context(), actor, action, "service", id)
}
