package store

import (
	"context"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListContacts(ctx context.Context) ([]models.ContactSubmission, error) {
	s.contacts.mu.Lock()
	defer s.contacts.mu.Unlock()

	return readAll[models.ContactSubmission](s.contacts.path)
}

func (s *Store) GetContact(ctx context.Context, id string) (*models.ContactSubmission, error) {
	recs, err := s.ListContacts(ctx)
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

// CreateContact ignores any caller-supplied status; every submission starts
// its life as "new".
func (s *Store) CreateContact(ctx context.Context, c *models.ContactSubmission) (*models.ContactSubmission, error) {
	s.contacts.mu.Lock()
	defer s.contacts.mu.Unlock()

	recs, err := readAll[models.ContactSubmission](s.contacts.path)
	if err != nil {
		return nil, err
	}

	rec := *c
	rec.ID = s.nextID()
	rec.Status = models.ContactNew
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	recs = append(recs, rec)
	if err := writeAll(s.contacts.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) UpdateContact(ctx context.Context, id string, p models.ContactPatch) (*models.ContactSubmission, error) {
	s.contacts.mu.Lock()
	defer s.contacts.mu.Unlock()

	recs, err := readAll[models.ContactSubmission](s.contacts.path)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		rec := &recs[i]
		if p.Status != nil {
			rec.Status = *p.Status
		}
		if p.Notes != nil {
			rec.Notes = *p.Notes
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.contacts.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

func (s *Store) DeleteContact(ctx context.Context, id string) (bool, error) {
	s.contacts.mu.Lock()
	defer s.contacts.mu.Unlock()

	recs, err := readAll[models.ContactSubmission](s.contacts.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.contacts.path, recs)
		}
	}

	return false, nil
}
