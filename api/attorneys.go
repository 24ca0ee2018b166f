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

type AttorneysHandler struct {
	repo     repository.AttorneyRepo
	sessions *auth.Sessions
	audit    repository.AuditRepo
}

func NewAttorneysHandler(repo repository.AttorneyRepo, sessions *auth.Sessions, audit repository.AuditRepo) *AttorneysHandler {
	return &AttorneysHandler{repo: repo, sessions: sessions, audit: audit}
}

type createAttorneyRequest struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Specialty     string   `json:"specialty"`
	Education     []string `json:"education"`
	Experience    string   `json:"experience"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	ProfileURL    string   `json:"profileUrl"`
	Photo         string   `json:"photo"`
	Bio           string   `json:"bio"`
	PracticeAreas []string `json:"practiceAreas"`
	BarAdmissions []string `json:"barAdmissions"`
	Languages     []string `json:"languages"`
	Status        string   `json:"status"`
	Order         int      `json:"order"`
}

// List returns active attorneys; ?includeInactive=true widens that to the
// whole collection when a valid session is present.
func (h *AttorneysHandler) List(w http.ResponseWriter, r *http.Request) {
	_, authed := h.sessions.Verify(r)
	includeInactive := r.URL.Query().Get("includeInactive") == "true" && authed

	var (
		recs []models.Attorney
		err  error
	)
	if includeInactive {
		recs, err = h.repo.ListAttorneys(r.Context())
	} else {
		recs, err = h.repo.ActiveAttorneys(r.Context())
	}
	if err != nil {
		logger.Error("list attorneys", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list attorneys")
		return
	}
	if recs == nil {
		recs = []models.Attorney{}
	}

	writeJSON(w, map[string]any{"attorneys": recs}, http.StatusOK)
}

// Get resolves by id first, then by slug. Inactive records are only visible
// with a session; anonymous callers get the same 404 as for a missing id.
func (h *AttorneysHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	rec, err := h.repo.GetAttorney(r.Context(), key)
	if err == nil && rec == nil {
		rec, err = h.repo.GetAttorneyBySlug(r.Context(), key)
	}
	if err != nil {
		logger.Error("get attorney", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to load attorney")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "attorney not found")
		return
	}
	if rec.Status != models.StatusActive {
		if _, authed := h.sessions.Verify(r); !authed {
			writeError(w, http.StatusNotFound, "attorney not found")
			return
		}
	}

	writeJSON(w, map[string]any{"attorney": rec}, http.StatusOK)
}

func (h *AttorneysHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	details, err := validateBody(r.Context(), attorneyCreateSchema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if details != nil {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	var req createAttorneyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	slug := models.Slugify(req.Name)
	if slug == "" {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/name": "must contain letters or digits"})
		return
	}
	if conflict := h.slugConflict(w, r, slug, ""); conflict {
		return
	}

	rec, err := h.repo.CreateAttorney(r.Context(), &models.Attorney{
		Name:          req.Name,
		Slug:          slug,
		Title:         req.Title,
		Specialty:     req.Specialty,
		Education:     req.Education,
		Experience:    req.Experience,
		Email:         req.Email,
		Phone:         req.Phone,
		ProfileURL:    req.ProfileURL,
		Photo:         req.Photo,
		Bio:           req.Bio,
		PracticeAreas: req.PracticeAreas,
		BarAdmissions: req.BarAdmissions,
		Languages:     req.Languages,
		Status:        req.Status,
		Order:         req.Order,
	})
	if err != nil {
		logger.Error("create attorney", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to create attorney")
		return
	}

	h.record(r, "create", rec.ID)
	writeJSON(w, map[string]any{"attorney": rec}, http.StatusCreated)
}

func (h *AttorneysHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p models.AttorneyPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if p.Status != nil && !models.ValidContentStatus(*p.Status) {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/status": `must be "active" or "inactive"`})
		return
	}
	if p.Name != nil {
		slug := models.Slugify(*p.Name)
		if slug == "" {
			writeErrorDetails(w, http.StatusBadRequest, "validation failed",
				map[string]string{"/name": "must contain letters or digits"})
			return
		}
		if conflict := h.slugConflict(w, r, slug, id); conflict {
			return
		}
	}

	rec, err := h.repo.UpdateAttorney(r.Context(), id, p)
	if err != nil {
		logger.Error("update attorney", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to update attorney")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "attorney not found")
		return
	}

	h.record(r, "update", rec.ID)
	writeJSON(w, map[string]any{"attorney": rec}, http.StatusOK)
}

func (h *AttorneysHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.repo.DeleteAttorney(r.Context(), id)
	if err != nil {
		logger.Error("delete attorney", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to delete attorney")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "attorney not found")
		return
	}

	h.record(r, "delete", id)
	writeJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

// slugConflict writes the conflict response and reports true when the slug
// already belongs to a different record.
func (h *AttorneysHandler) slugConflict(w http.ResponseWriter, r *http.Request, slug, selfID string) bool {
	existing, err := h.repo.GetAttorneyBySlug(r.Context(), slug)
	if err != nil {
		logger.Error("check attorney slug", slog.Any("err", err))
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

func (h *AttorneysHandler) record(r *http.Request, action, id string) {
	actor := "unknown"
	if identity, ok := identityFrom(r); ok {
		actor = identity.Email
	}
	// audit failures must never fail the request
	_ = h.audit.Record(r.Context(), actor, action, "attorney", id)
}
