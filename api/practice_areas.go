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

type PracticeAreasHandler struct {
	repo     repository.PracticeAreaRepo
	sessions *auth.Sessions
	audit    repository.AuditRepo
}

func NewPracticeAreasHandler(repo repository.PracticeAreaRepo, sessions *auth.Sessions, audit repository.AuditRepo) *PracticeAreasHandler {
	return &PracticeAreasHandler{repo: repo, sessions: sessions, audit: audit}
}

type createPracticeAreaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
}

func (h *PracticeAreasHandler) List(w http.ResponseWriter, r *http.Request) {
	_, authed := h.sessions.Verify(r)
	includeInactive := r.URL.Query().Get("includeInactive") == "true" && authed

	var (
		recs []models.PracticeArea
		err  error
	)
	if includeInactive {
		recs, err = h.repo.ListPracticeAreas(r.Context())
	} else {
		recs, err = h.repo.ActivePracticeAreas(r.Context())
	}
	if err != nil {
		logger.Error("list practice areas", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list practice areas")
		return
	}
	if recs == nil {
		recs = []models.PracticeArea{}
	}

	writeJSON(w, map[string]any{"practiceAreas": recs}, http.StatusOK)
}

func (h *PracticeAreasHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	rec, err := h.repo.GetPracticeArea(r.Context(), key)
	if err == nil && rec == nil {
		rec, err = h.repo.GetPracticeAreaBySlug(r.Context(), key)
	}
	if err != nil {
		logger.Error("get practice area", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to load practice area")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "practice area not found")
		return
	}
	if rec.Status != models.StatusActive {
		if _, authed := h.sessions.Verify(r); !authed {
			writeError(w, http.StatusNotFound, "practice area not found")
			return
		}
	}

	writeJSON(w, map[string]any{"practiceArea": rec}, http.StatusOK)
}

func (h *PracticeAreasHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	details, err := validateBody(r.Context(), practiceAreaCreateSchema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if details != nil {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	var req createPracticeAreaRequest
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

	rec, err := h.repo.CreatePracticeArea(r.Context(), &models.PracticeArea{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Icon:        req.Icon,
		Status:      req.Status,
		Order:       req.Order,
	})
	if err != nil {
		logger.Error("create practice area", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to create practice area")
		return
	}

	h.record(r, "create", rec.ID)
	writeJSON(w, map[string]any{"practiceArea": rec}, http.StatusCreated)
}

func (h *PracticeAreasHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p models.PracticeAreaPatch
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

	rec, err := h.repo.UpdatePracticeArea(r.Context(), id, p)
	if err != nil {
		logger.Error("update practice area", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to update practice area")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "practice area not found")
		return
	}

	h.record(r, "update", rec.ID)
	writeJSON(w, map[string]any{"practiceArea": rec}, http.StatusOK)
}

func (h *PracticeAreasHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.repo.DeletePracticeArea(r.Context(), id)
	if err != nil {
		logger.Error("delete practice area", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to delete practice area")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "practice area not found")
		return
	}

	h.record(r, "delete", id)
	writeJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

func (h *PracticeAreasHandler) slugConflict(w http.ResponseWriter, r *http.Request, slug, selfID string) bool {
	existing, err := h.repo.GetPracticeAreaBySlug(r.Context(), slug)
	if err != nil {
		logger.Error("check practice area slug", slog.Any("err", err))
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

func (h *PracticeAreasHandler) record(r *http.Request, action, id string) {
	actor := "unknown"
	if identity, ok := identityFrom(r); ok {
		actor = identity.Email
	}
	_ = h.audit.Record(r.Context(), actor, action, "practice_area", id)
}
