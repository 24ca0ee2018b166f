package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/internal/store"
)

func newStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	return s, dir
}

func strp(s string) *string { return &s }

func TestAttorneyCreateRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	created, err := s.CreateAttorney(ctx, &models.Attorney{
		Name:      "Jane Roe",
		Slug:      "jane-roe",
		Title:     "Partner",
		Specialty: "Family Law",
		Email:     "jane@example.com",
		Bio:       "Bio text",
		Languages: []string{"English", "Spanish"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("empty id")
	}
	if created.Status != models.StatusActive {
		t.Fatalf("default status = %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps not stamped")
	}

	got, err := s.GetAttorney(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("record not found after create")
	}
	if got.Name != "Jane Roe" || got.Slug != "jane-roe" || got.Title != "Partner" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if len(got.Languages) != 2 {
		t.Fatalf("languages lost: %+v", got.Languages)
	}
}

func TestAttorneyUpdate(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	created, err := s.CreateAttorney(ctx, &models.Attorney{Name: "Jane Roe", Slug: "jane-roe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := s.UpdateAttorney(ctx, created.ID, models.AttorneyPatch{Title: strp("Senior Partner")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil {
		t.Fatal("update reported not found")
	}
	if updated.Title != "Senior Partner" {
		t.Fatalf("title = %q", updated.Title)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt did not increase: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("createdAt changed on update")
	}

	// renaming rewrites the slug
	renamed, err := s.UpdateAttorney(ctx, created.ID, models.AttorneyPatch{Name: strp("Jane Q. Roe")})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Slug != "jane-q-roe" {
		t.Fatalf("slug = %q", renamed.Slug)
	}
}

func TestUpdateDeleteMissing(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if _, err := s.CreateAttorney(ctx, &models.Attorney{Name: "Jane Roe", Slug: "jane-roe"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := s.UpdateAttorney(ctx, "nope", models.AttorneyPatch{Title: strp("x")})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if rec != nil {
		t.Fatal("update of missing id returned a record")
	}

	removed, err := s.DeleteAttorney(ctx, "nope")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if removed {
		t.Fatal("delete of missing id reported removal")
	}

	recs, err := s.ListAttorneys(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("collection modified by failed mutations: %d records", len(recs))
	}
}

func TestDeleteIdempotence(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	created, err := s.CreateAttorney(ctx, &models.Attorney{Name: "Jane Roe", Slug: "jane-roe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := s.DeleteAttorney(ctx, created.ID)
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	removed, err = s.DeleteAttorney(ctx, created.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if removed {
		t.Fatal("second delete reported removal")
	}
}

func TestActiveFilteringAndOrder(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	seed := []models.Attorney{
		{Name: "Second", Slug: "second", Order: 2},
		{Name: "Hidden", Slug: "hidden", Order: 0, Status: models.StatusInactive},
		{Name: "First", Slug: "first", Order: 1},
		{Name: "AlsoFirst", Slug: "also-first", Order: 1},
	}
	for i := range seed {
		if _, err := s.CreateAttorney(ctx, &seed[i]); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	active, err := s.ActiveAttorneys(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("active count = %d", len(active))
	}
	for _, a := range active {
		if a.Status != models.StatusActive {
			t.Fatalf("inactive record %q leaked into active view", a.Slug)
		}
	}
	// order 1 before order 2, ties by insertion order
	if active[0].Slug != "first" || active[1].Slug != "also-first" || active[2].Slug != "second" {
		t.Fatalf("unexpected ordering: %s, %s, %s", active[0].Slug, active[1].Slug, active[2].Slug)
	}
}

func TestBlogPublishTransition(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	draft, err := s.CreateBlogPost(ctx, &models.BlogPost{
		Title:   "Estate Planning Basics",
		Slug:    "estate-planning-basics",
		Excerpt: "intro",
		Content: "one two three",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if draft.Status != models.StatusDraft {
		t.Fatalf("default status = %q", draft.Status)
	}
	if draft.PublishedAt != nil {
		t.Fatal("draft has publishedAt")
	}
	if draft.ReadTime != "1 min read" {
		t.Fatalf("readTime = %q", draft.ReadTime)
	}

	published, err := s.PublishedBlogPosts(ctx)
	if err != nil {
		t.Fatalf("published: %v", err)
	}
	if len(published) != 0 {
		t.Fatal("draft visible in published view")
	}

	st := models.StatusPublished
	upd, err := s.UpdateBlogPost(ctx, draft.ID, models.BlogPostPatch{Status: &st})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if upd.PublishedAt == nil {
		t.Fatal("publishedAt not set on transition")
	}
	firstPublished := *upd.PublishedAt

	published, err = s.PublishedBlogPosts(ctx)
	if err != nil {
		t.Fatalf("published: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("published count = %d", len(published))
	}

	// publishing again must not move the timestamp
	upd2, err := s.UpdateBlogPost(ctx, draft.ID, models.BlogPostPatch{Status: &st})
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if upd2.PublishedAt == nil || !upd2.PublishedAt.Equal(firstPublished) {
		t.Fatalf("publishedAt moved: %v vs %v", upd2.PublishedAt, firstPublished)
	}
}

func TestBlogContentUpdateRecomputesReadTime(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	post, err := s.CreateBlogPost(ctx, &models.BlogPost{Title: "T", Slug: "t", Content: "short"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	long := ""
	for range 450 {
		long += "word "
	}
	upd, err := s.UpdateBlogPost(ctx, post.ID, models.BlogPostPatch{Content: &long})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.ReadTime != "3 min read" {
		t.Fatalf("readTime = %q", upd.ReadTime)
	}
}

func TestContactCreateForcesNewStatus(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	rec, err := s.CreateContact(ctx, &models.ContactSubmission{
		Name:        "Visitor",
		Email:       "v@example.com",
		InquiryType: "consultation",
		Message:     "hello",
		Status:      models.ContactResponded,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Status != models.ContactNew {
		t.Fatalf("status = %q, want %q", rec.Status, models.ContactNew)
	}

	st := models.ContactRead
	upd, err := s.UpdateContact(ctx, rec.ID, models.ContactPatch{Status: &st})
	if err != nil {
		t.Fatalf("triage: %v", err)
	}
	if upd.Status != models.ContactRead {
		t.Fatalf("status after triage = %q", upd.Status)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	created, err := s.CreatePracticeArea(ctx, &models.PracticeArea{
		Title:       "Family Law",
		Slug:        "family-law",
		Description: "desc",
		Content:     "content",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reopened, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.GetPracticeAreaBySlug(ctx, "family-law")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("record lost across reopen: %+v", got)
	}
}

func TestAdminSeedOnce(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.EnsureAdmin(ctx, "admin@example.com", "hash-1", "Admin"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// second call is a no-op even with different values
	if err := s.EnsureAdmin(ctx, "other@example.com", "hash-2", "Other"); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	admins, err := s.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("admin count = %d", len(admins))
	}
	if admins[0].Email != "admin@example.com" {
		t.Fatalf("seed email = %q", admins[0].Email)
	}
}

func TestConcurrentCreatesSerialize(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.CreateService(ctx, &models.Service{
				Title:    fmt.Sprintf("Service %d", i),
				Slug:     fmt.Sprintf("service-%d", i),
				Category: "general",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent create: %v", err)
		}
	}

	recs, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != n {
		t.Fatalf("lost updates: %d of %d records persisted", len(recs), n)
	}

	seen := make(map[string]bool, n)
	for _, r := range recs {
		if seen[r.ID] {
			t.Fatalf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
	}
}
