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

type BlogsHandler struct {
	repo     repository.BlogRepo
	sessions *auth.Sessions
	audit    repository.AuditRepo
}

func NewBlogsHandler(repo repository.BlogRepo, sessions *auth.Sessions, audit repository.AuditRepo) *BlogsHandler {
	return &BlogsHandler{repo: repo, sessions: sessions, audit: audit}
}

type createBlogRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	Status    string `json:"status"`
}

// List returns published posts newest first; ?includeDrafts=true widens that
// to the whole collection when a valid session is present.
func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	_, authed := h.sessions.Verify(r)
	includeDrafts := r.URL.Query().Get("includeDrafts") == "true" && authed

	var (
		recs []models.BlogPost
		err  error
	)
	if includeDrafts {
		recs, err = h.repo.ListBlogPosts(r.Context())
	} else {
		recs, err = h.repo.PublishedBlogPosts(r.Context())
	}
	if err != nil {
		logger.Error("list blog posts", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list blog posts")
		return
	}
	if recs == nil {
		recs = []models.BlogPost{}
	}

	writeJSON(w, map[string]any{"blogs": recs}, http.StatusOK)
}

func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	rec, err := h.repo.GetBlogPost(r.Context(), key)
	if err == nil && rec == nil {
		rec, err = h.repo.GetBlogPostBySlug(r.Context(), key)
	}
	if err != nil {
		logger.Error("get blog post", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to load blog post")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}
	if rec.Status != models.StatusPublished {
		if _, authed := h.sessions.Verify(r); !authed {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
	}

	writeJSON(w, map[string]any{"blog": rec}, http.StatusOK)
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	details, err := validateBody(r.Context(), blogCreateSchema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if details != nil {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	var req createBlogRequest
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

	rec, err := h.repo.CreateBlogPost(r.Context(), &models.BlogPost{
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
		Author:    req.Author,
		Status:    req.Status,
	})
	if err != nil {
		logger.Error("create blog post", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to create blog post")
		return
	}

	h.record(r, "create", rec.ID)
	writeJSON(w, map[string]any{"blog": rec}, http.StatusCreated)
}

func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p models.BlogPostPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if p.Status != nil && !models.ValidBlogStatus(*p.Status) {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/status": `must be "draft" or "published"`})
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

	rec, err := h.repo.UpdateBlogPost(r.Context(), id, p)
	if err != nil {
		logger.Error("update blog post", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to update blog post")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}

	h.record(r, "update", rec.ID)
	writeJSON(w, map[string]any{"blog": rec}, http.StatusOK)
}

func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.repo.DeleteBlogPost(r.Context(), id)
	if err != nil {
		logger.Error("delete blog post", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to delete blog post")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}

	h.record(r, "delete", id)
	writeJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

func (h *BlogsHandler) slugConflict(w http.ResponseWriter, r *http.Request, slug, selfID string) bool {
	existing, err := h.repo.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		logger.Error("check blog slug", slog.Any("err", err))
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

func (h *BlogsHandler) record(r *http.Request, action, id string) {
	actor := "unknown"
	if identity, ok := identityFrom(r); ok {
		actor = identity.Email
	}
	_ = h.audit.Record(r.Context(), actor, action, "blog", id)
}
