package api_test

import (
	"net/http"
	"testing"

	"github.com/meridianlaw/cms/internal/models"
)

func TestPracticeAreaLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/v1/practice-areas", map[string]any{
		"title":       "Estate Planning",
		"description": "Wills, trusts and probate.",
		"content":     "We help families plan ahead.",
	}, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body.String())
	}
	var createResp struct {
		PracticeArea models.PracticeArea `json:"practiceArea"`
	}
	decodeBody(t, w, &createResp)
	if createResp.PracticeArea.Slug != "estate-planning" {
		t.Fatalf("slug = %q", createResp.PracticeArea.Slug)
	}

	// public read by slug
	w = doJSON(t, router, http.MethodGet, "/v1/practice-areas/estate-planning", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get by slug: status = %d", w.Code)
	}

	var listResp struct {
		PracticeAreas []models.PracticeArea `json:"practiceAreas"`
	}
	w = doJSON(t, router, http.MethodGet, "/v1/practice-areas", nil, nil)
	decodeBody(t, w, &listResp)
	if len(listResp.PracticeAreas) != 1 {
		t.Fatalf("list size = %d", len(listResp.PracticeAreas))
	}

	id := createResp.PracticeArea.ID
	if w := doJSON(t, router, http.MethodDelete, "/v1/practice-areas/"+id, nil, cookies); w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
}

func TestServiceLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/v1/services", map[string]any{
		"title":       "Contract Review",
		"description": "Fixed-fee contract review.",
		"content":     "Turnaround in five business days.",
		"category":    "business",
		"features":    []string{"fixed fee", "five day turnaround"},
	}, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body.String())
	}
	var createResp struct {
		Service models.Service `json:"service"`
	}
	decodeBody(t, w, &createResp)
	if createResp.Service.Slug != "contract-review" {
		t.Fatalf("slug = %q", createResp.Service.Slug)
	}

	// category is required
	w = doJSON(t, router, http.MethodPost, "/v1/services", map[string]any{
		"title":       "Notary",
		"description": "Walk-in notary service.",
		"content":     "Bring photo id.",
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing category: status = %d", w.Code)
	}

	var listResp struct {
		Services []models.Service `json:"services"`
	}
	w = doJSON(t, router, http.MethodGet, "/v1/services", nil, nil)
	decodeBody(t, w, &listResp)
	if len(listResp.Services) != 1 {
		t.Fatalf("list size = %d", len(listResp.Services))
	}
}
