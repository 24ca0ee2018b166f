package api

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/pkg/repository"
)

// ContactsHandler takes submissions from anonymous visitors and lets admins
// triage them. There is no public read path.
type ContactsHandler struct {
	repo  repository.ContactRepo
	audit repository.AuditRepo
}

func NewContactsHandler(repo repository.ContactRepo, audit repository.AuditRepo) *ContactsHandler {
	return &ContactsHandler{repo: repo, audit: audit}
}

type createContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
}

func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	details, err := validateBody(r.Context(), contactCreateSchema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if details != nil {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	var req createContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	rec, err := h.repo.CreateContact(r.Context(), &models.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Message:     req.Message,
	})
	if err != nil {
		logger.Error("create contact", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to submit contact")
		return
	}

	writeJSON(w, map[string]any{"contact": rec}, http.StatusCreated)
}

func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.repo.ListContacts(r.Context())
	if err != nil {
		logger.Error("list contacts", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}
	if recs == nil {
		recs = []models.ContactSubmission{}
	}

	writeJSON(w, map[string]any{"contacts": recs}, http.StatusOK)
}

func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := h.repo.GetContact(r.Context(), id)
	if err != nil {
		logger.Error("get contact", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to load contact")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	writeJSON(w, map[string]any{"contact": rec}, http.StatusOK)
}

func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p models.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if p.Status != nil && !models.ValidContactStatus(*p.Status) {
		writeErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]string{"/status": `must be "new", "read" or "responded"`})
		return
	}

	rec, err := h.repo.UpdateContact(r.Context(), id, p)
	if err != nil {
		logger.Error("update contact", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to update contact")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	h.record(r, "update", rec.ID)
	writeJSON(w, map[string]any{"contact": rec}, http.StatusOK)
}

func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.repo.DeleteContact(r.Context(), id)
	if err != nil {
		logger.Error("delete contact", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to delete contact")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	h.record(r, "delete", id)
	writeJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

func (h *ContactsHandler) record(r *http.Request, action, id string) {
	actor := "unknown"
	if identity, ok := identityFrom(r); ok {
		actor = identity.Email
	}
	_ = h.audit.Record(r.Context(), actor, action, "contact", id)
}
