package store

import (
	"context"
	"sort"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListAttorneys(ctx context.Context) ([]models.Attorney, error) {
	s.attorneys.mu.Lock()
	defer s.attorneys.mu.Unlock()

	return readAll[models.Attorney](s.attorneys.path)
}

// ActiveAttorneys returns the visitor-facing subset, sorted by display order
// with insertion order breaking ties.
func (s *Store) ActiveAttorneys(ctx context.Context) ([]models.Attorney, error) {
	recs, err := s.ListAttorneys(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Attorney, 0, len(recs))
	for _, a := range recs {
		if a.Status == models.StatusActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	return out, nil
}

func (s *Store) GetAttorney(ctx context.Context, id string) (*models.Attorney, error) {
	recs, err := s.ListAttorneys(ctx)
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

func (s *Store) GetAttorneyBySlug(ctx context.Context, slug string) (*models.Attorney, error) {
	recs, err := s.ListAttorneys(ctx)
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

func (s *Store) CreateAttorney(ctx context.Context, a *models.Attorney) (*models.Attorney, error) {
	s.attorneys.mu.Lock()
	defer s.attorneys.mu.Unlock()

	recs, err := readAll[models.Attorney](s.attorneys.path)
	if err != nil {
		return nil, err
	}

	rec := *a
	rec.ID = s.nextID()
	if rec.Slug == "" {
		rec.Slug = models.Slugify(rec.Name)
	}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	recs = append(recs, rec)
	if err := writeAll(s.attorneys.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

// UpdateAttorney shallow-merges the patch over the stored record. A nil
// record with nil error means the id is unknown.
func (s *Store) UpdateAttorney(ctx context.Context, id string, p models.AttorneyPatch) (*models.Attorney, error) {
	s.attorneys.mu.Lock()
	defer s.attorneys.mu.Unlock()

	recs, err := readAll[models.Attorney](s.attorneys.path)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		rec := &recs[i]
		if p.Name != nil {
			rec.Name = *p.Name
			rec.Slug = models.Slugify(*p.Name)
		}
		if p.Title != nil {
			rec.Title = *p.Title
		}
		if p.Specialty != nil {
			rec.Specialty = *p.Specialty
		}
		if p.Education != nil {
			rec.Education = *p.Education
		}
		if p.Experience != nil {
			rec.Experience = *p.Experience
		}
		if p.Email != nil {
			rec.Email = *p.Email
		}
		if p.Phone != nil {
			rec.Phone = *p.Phone
		}
		if p.ProfileURL != nil {
			rec.ProfileURL = *p.ProfileURL
		}
		if p.Photo != nil {
			rec.Photo = *p.Photo
		}
		if p.Bio != nil {
			rec.Bio = *p.Bio
		}
		if p.PracticeAreas != nil {
			rec.PracticeAreas = *p.PracticeAreas
		}
		if p.BarAdmissions != nil {
			rec.BarAdmissions = *p.BarAdmissions
		}
		if p.Languages != nil {
			rec.Languages = *p.Languages
		}
		if p.Status != nil {
			rec.Status = *p.Status
		}
		if p.Order != nil {
			rec.Order = *p.Order
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.attorneys.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

// DeleteAttorney reports whether a record was actually removed.
func (s *Store) DeleteAttorney(ctx context.Context, id string) (bool, error) {
	s.attorneys.mu.Lock()
	defer s.attorneys.mu.Unlock()

	recs, err := readAll[models.Attorney](s.attorneys.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.attorneys.path, recs)
		}
	}

	return false, nil
}
