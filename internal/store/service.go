package store

import (
	"context"
	"sort"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.services.mu.Lock()
	defer s.services.mu.Unlock()

	return readAll[models.Service](s.services.path)
}

func (s *Store) ActiveServices(ctx context.Context) ([]models.Service, error) {
	recs, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Service, 0, len(recs))
	for _, sv := range recs {
		if sv.Status == models.StatusActive {
			out = append(out, sv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	return out, nil
}

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	recs, err := s.ListServices(ctx)
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

func (s *Store) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	recs, err := s.ListServices(ctx)
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

func (s *Store) CreateService(ctx context.Context, sv *models.Service) (*models.Service, error) {
	s.services.mu.Lock()
	defer s.services.mu.Unlock()

	recs, err := readAll[models.Service](s.services.path)
	if err != nil {
		return nil, err
	}

	rec := *sv
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
	if err := writeAll(s.services.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) UpdateService(ctx context.Context, id string, p models.ServicePatch) (*models.Service, error) {
	s.services.mu.Lock()
	defer s.services.mu.Unlock()

	recs, err := readAll[models.Service](s.services.path)
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
		if p.Category != nil {
			rec.Category = *p.Category
		}
		if p.Features != nil {
			rec.Features = *p.Features
		}
		if p.Status != nil {
			rec.Status = *p.Status
		}
		if p.Order != nil {
			rec.Order = *p.Order
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.services.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	s.services.mu.Lock()
	defer s.services.mu.Unlock()

	recs, err := readAll[models.Service](s.services.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.services.path, recs)
		}
	}

	return false, nil
}
