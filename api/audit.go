package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/pkg/repository"
)

type AuditHandler struct {
	repo repository.AuditRepo
}

func NewAuditHandler(repo repository.AuditRepo) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List returns audit entries newest first with limit/offset pagination.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 50
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	offset := 0
	if o := q.Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	entries, err := h.repo.ListAudit(r.Context(), limit, offset)
	if err != nil {
		logger.Error("list audit entries", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "failed to list audit entries")
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}

	writeJSON(w, map[string]any{
		"limit":   limit,
		"offset":  offset,
		"entries": entries,
	}, http.StatusOK)
}
