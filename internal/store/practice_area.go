package store

import (
	"context"
	"sort"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListPracticeAreas(ctx context.Context) ([]models.PracticeArea, error) {
	s.areas.mu.Lock()
	defer s.areas.mu.Unlock()

	return readAll[models.PracticeArea](s.areas.path)
}

func (s *Store) ActivePracticeAreas(ctx context.Context) ([]models.PracticeArea, error) {
	recs, err := s.ListPracticeAreas(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.PracticeArea, 0, len(recs))
	for _, a := range recs {
		if a.Status == models.StatusActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	return out, nil
}

func (s *Store) GetPracticeArea(ctx context.Context, id string) (*models.PracticeArea, error) {
	recs, err := s.ListPracticeAreas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].ID == id {
			return &recs[i], nil
		}
	}

	return nil, nil
}

func (s *Store) GetPracticeAreaBySlug(ctx context.Context, slug string) (*models.PracticeArea, error) {
	recs, err := s.ListPracticeAreas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].Slug == slug {
			return &recs[i], nil
		}
	}

	return nil, nil
}

func (s *Store) CreatePracticeArea(ctx context.Context, a *models.PracticeArea) (*models.PracticeArea, error) {
	s.areas.mu.Lock()
	defer s.areas.mu.Unlock()

	recs, err := readAll[models.PracticeArea](s.areas.path)
	if err != nil {
		return nil, err
	}

	rec := *a
	rec.ID = s.nextID()
	if rec.Slug == "" {
		rec.Slug = models.Slugify(rec.Title)
	}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	recs = append(recs, rec)
	if err := writeAll(s.areas.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) UpdatePracticeArea(ctx context.Context, id string, p models.PracticeAreaPatch) (*models.PracticeArea, error) {
	s.areas.mu.Lock()
	defer s.areas.mu.Unlock()

	recs, err := readAll[models.PracticeArea](s.areas.path)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		rec := &recs[i]
		if p.Title != nil {
			rec.Title = *p.Title
			rec.Slug = models.Slugify(*p.Title)
		}
		if p.Description != nil {
			rec.Description = *p.Description
		}
		if p.Content != nil {
			rec.Content = *p.Content
		}
		if p.Image != nil {
			rec.Image = *p.Image
		}
		if p.Icon != nil {
			rec.Icon = *p.Icon
		}
		if p.Status != nil {
			rec.Status = *p.Status
		}
		if p.Order != nil {
			rec.Order = *p.Order
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.areas.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

func (s *Store) DeletePracticeArea(ctx context.Context, id string) (bool, error) {
	s.areas.mu.Lock()
	defer s.areas.mu.Unlock()

	recs, err := readAll[models.PracticeArea](s.areas.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.areas.path, recs)
		}
	}

	return false, nil
}
